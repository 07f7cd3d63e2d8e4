package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/adept/ent"
	"github.com/abhisek/adept/ent/profilesnapshot"
	"github.com/abhisek/adept/internal/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *profileRepo) Save(ctx context.Context, userID string, p *profile.Profile) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	dataMap, err := profileToMap(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.client.ProfileSnapshot.Create().
		SetUserID(userID).
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile snapshot: %w", err)
	}
	return nil
}

func (r *profileRepo) Latest(ctx context.Context, userID string) (*profile.Profile, error) {
	s, err := r.client.ProfileSnapshot.Query().
		Where(profilesnapshot.UserID(userID)).
		Order(ent.Desc(profilesnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest profile: %w", err)
	}
	return profileFromMap(s.Data)
}

func (r *profileRepo) Prune(ctx context.Context, userID string, keep int) error {
	// Find the sequence threshold: the Nth most recent snapshot for this user.
	snaps, err := r.client.ProfileSnapshot.Query().
		Where(profilesnapshot.UserID(userID)).
		Order(ent.Desc(profilesnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snaps) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snaps[0].Sequence
	_, err = r.client.ProfileSnapshot.Delete().
		Where(
			profilesnapshot.UserID(userID),
			profilesnapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune profile snapshots: %w", err)
	}
	return nil
}

// profileToMap converts a Profile to map[string]any for ent JSON storage.
func profileToMap(p *profile.Profile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// profileFromMap converts stored JSON back to a Profile.
func profileFromMap(m map[string]any) (*profile.Profile, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	p := profile.New()
	if err := json.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, nil
}
