package diagnostic

import "strings"

// DefaultBank is the bank served when a topic cannot be resolved.
// Topic resolution is total: every input string maps to some bank.
const DefaultBank = "algorithms"

// topicAliases folds common topic spellings onto bank keys.
var topicAliases = map[string]string{
	"os":                "operating_systems",
	"operating_systems": "operating_systems",
	"deadlock":          "operating_systems",
	"scheduling":        "operating_systems",
	"ds":                "data_structures",
	"data_structures":   "data_structures",
	"dsa":               "data_structures",
	"algo":              "algorithms",
	"algorithms":        "algorithms",
	"sorting":           "algorithms",
	"graphs":            "algorithms",
}

// NormalizeTopic folds a free-text topic name onto a bank key:
// lowercased, with spaces and colons collapsed to underscores, then
// resolved through the alias table. Unknown topics fall back to
// DefaultBank.
func NormalizeTopic(topic string) string {
	key := strings.ToLower(strings.TrimSpace(topic))
	key = strings.ReplaceAll(key, ":", "_")
	key = strings.ReplaceAll(key, " ", "_")
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	if bank, ok := topicAliases[key]; ok {
		return bank
	}
	if _, ok := banks[key]; ok {
		return key
	}
	return DefaultBank
}

// banks is the static, hand-authored question bank, keyed by
// normalized topic. Loaded once; read-only afterwards.
var banks = map[string][]Question{
	"operating_systems": {
		{
			ID:   "os_1",
			Text: "What happens when multiple processes need the same resource simultaneously?",
			Options: []string{
				"They share it automatically",
				"Resource contention occurs, possibly leading to deadlock",
				"The faster process always wins",
				"The OS crashes",
			},
			CorrectIndex:  1,
			Difficulty:    DifficultyMedium,
			Topic:         "Operating Systems",
			ConceptTested: "Resource Management",
		},
		{
			ID:   "os_2",
			Text: "If you were explaining process scheduling to a friend, which analogy would help YOU understand it best?",
			Options: []string{
				"A traffic signal managing cars at an intersection",
				"The formal definition: 'Algorithm that determines process execution order'",
				"A flowchart showing process states",
				"Practice problems from previous exams",
			},
			CorrectIndex:  0,
			Difficulty:    DifficultyEasy,
			Topic:         "Operating Systems",
			ConceptTested: "Learning Style Detection",
		},
		{
			ID:   "os_3",
			Text: "Which condition is NOT required for a deadlock to occur?",
			Options: []string{
				"Mutual Exclusion",
				"Hold and Wait",
				"Preemption",
				"Circular Wait",
			},
			CorrectIndex:  2,
			Difficulty:    DifficultyHard,
			Topic:         "Operating Systems",
			ConceptTested: "Deadlock Conditions",
		},
		{
			ID:   "os_4",
			Text: "When learning new concepts, I prefer to:",
			Options: []string{
				"Start with real-world examples and stories, then learn the theory",
				"See diagrams and visual representations first",
				"Jump straight to definitions and formulas",
				"Practice problems and past exam questions immediately",
			},
			CorrectIndex:  0,
			Difficulty:    DifficultyEasy,
			Topic:         "Meta",
			ConceptTested: "Depth Preference Detection",
		},
		{
			ID:   "os_5",
			Text: "In virtual memory, what is a page fault?",
			Options: []string{
				"An error in the page table",
				"When a referenced page is not in physical memory",
				"When the page size is incorrectly configured",
				"A type of segmentation fault",
			},
			CorrectIndex:  1,
			Difficulty:    DifficultyMedium,
			Topic:         "Operating Systems",
			ConceptTested: "Virtual Memory",
		},
	},
	"data_structures": {
		{
			ID:            "ds_1",
			Text:          "What is the time complexity of searching in a balanced BST?",
			Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
			CorrectIndex:  1,
			Difficulty:    DifficultyMedium,
			Topic:         "Data Structures",
			ConceptTested: "Tree Complexity",
		},
		{
			ID:            "ds_2",
			Text:          "Which data structure would you use for implementing an 'Undo' feature?",
			Options:       []string{"Queue", "Stack", "Array", "Linked List"},
			CorrectIndex:  1,
			Difficulty:    DifficultyEasy,
			Topic:         "Data Structures",
			ConceptTested: "Stack Applications",
		},
		{
			ID:   "ds_3",
			Text: "When I encounter a new data structure, I first want to:",
			Options: []string{
				"Understand WHY it was invented - what problem it solves",
				"See a visual diagram of how it looks",
				"Memorize the operations and their complexities",
				"Solve coding problems using it",
			},
			CorrectIndex:  0,
			Difficulty:    DifficultyEasy,
			Topic:         "Meta",
			ConceptTested: "Learning Style Detection",
		},
		{
			ID:   "ds_4",
			Text: "What is the main advantage of a hash table over a BST?",
			Options: []string{
				"Ordered traversal",
				"O(1) average case lookup",
				"Lower memory usage",
				"Simpler implementation",
			},
			CorrectIndex:  1,
			Difficulty:    DifficultyMedium,
			Topic:         "Data Structures",
			ConceptTested: "Hash Tables",
		},
		{
			ID:   "ds_5",
			Text: "In a heap, what is the relationship between a parent and its children?",
			Options: []string{
				"Parent is always smaller (min-heap) or larger (max-heap)",
				"Children are always equal to parent",
				"No specific relationship",
				"Parent is the average of children",
			},
			CorrectIndex:  0,
			Difficulty:    DifficultyMedium,
			Topic:         "Data Structures",
			ConceptTested: "Heap Property",
		},
	},
	"algorithms": {
		{
			ID:            "algo_1",
			Text:          "Which sorting algorithm has the best average-case time complexity?",
			Options:       []string{"Bubble Sort", "Quick Sort", "Selection Sort", "Insertion Sort"},
			CorrectIndex:  1,
			Difficulty:    DifficultyEasy,
			Topic:         "Algorithms",
			ConceptTested: "Sorting Complexity",
		},
		{
			ID:   "algo_2",
			Text: "When would you choose BFS over DFS?",
			Options: []string{
				"When memory is limited",
				"When finding the shortest path in unweighted graphs",
				"When the graph is very deep",
				"When you need to visit all nodes",
			},
			CorrectIndex:  1,
			Difficulty:    DifficultyMedium,
			Topic:         "Algorithms",
			ConceptTested: "Graph Traversal",
		},
		{
			ID:   "algo_3",
			Text: "What is the key idea behind dynamic programming?",
			Options: []string{
				"Always use recursion",
				"Store and reuse solutions to overlapping subproblems",
				"Divide the problem into independent parts",
				"Use greedy choices at each step",
			},
			CorrectIndex:  1,
			Difficulty:    DifficultyHard,
			Topic:         "Algorithms",
			ConceptTested: "Dynamic Programming",
		},
		{
			ID:   "algo_4",
			Text: "I feel most confident when I can:",
			Options: []string{
				"Relate algorithms to everyday situations",
				"See step-by-step execution traces",
				"Remember the exact steps and formula",
				"Practice with competitive programming problems",
			},
			CorrectIndex:  0,
			Difficulty:    DifficultyEasy,
			Topic:         "Meta",
			ConceptTested: "Confidence Style",
		},
		{
			ID:            "algo_5",
			Text:          "What is the time complexity of binary search?",
			Options:       []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
			CorrectIndex:  1,
			Difficulty:    DifficultyEasy,
			Topic:         "Algorithms",
			ConceptTested: "Search Algorithms",
		},
	},
}

// Questions returns the ordered question list for a free-text topic
// name. Resolution never fails; unknown topics get the default bank.
func Questions(topic string) []Question {
	key := NormalizeTopic(topic)
	qs := banks[key]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Lookup finds a question by id across all banks.
func Lookup(id string) (Question, bool) {
	for _, qs := range banks {
		for _, q := range qs {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// BankTopics lists the available bank keys.
func BankTopics() []string {
	return []string{"operating_systems", "data_structures", "algorithms"}
}
