// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adept/ent/adaptationevent"
	"github.com/abhisek/adept/ent/predicate"
)

// AdaptationEventUpdate is the builder for updating AdaptationEvent entities.
type AdaptationEventUpdate struct {
	config
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdate) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AdaptationEventUpdate) SetSessionID(v string) *AdaptationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableSessionID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdaptationEventUpdate) SetUserID(v string) *AdaptationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableUserID(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *AdaptationEventUpdate) SetTrigger(v string) *AdaptationEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableTrigger(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AdaptationEventUpdate) SetSource(v string) *AdaptationEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableSource(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *AdaptationEventUpdate) SetField(v string) *AdaptationEventUpdate {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableField(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetFromValue sets the "from_value" field.
func (_u *AdaptationEventUpdate) SetFromValue(v string) *AdaptationEventUpdate {
	_u.mutation.SetFromValue(v)
	return _u
}

// SetNillableFromValue sets the "from_value" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableFromValue(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetFromValue(*v)
	}
	return _u
}

// SetToValue sets the "to_value" field.
func (_u *AdaptationEventUpdate) SetToValue(v string) *AdaptationEventUpdate {
	_u.mutation.SetToValue(v)
	return _u
}

// SetNillableToValue sets the "to_value" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableToValue(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetToValue(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AdaptationEventUpdate) SetReasoning(v string) *AdaptationEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AdaptationEventUpdate) SetNillableReasoning(v *string) *AdaptationEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdate) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AdaptationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AdaptationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adaptationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := adaptationevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := adaptationevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := adaptationevent.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.field": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromValue(); ok {
		if err := adaptationevent.FromValueValidator(v); err != nil {
			return &ValidationError{Name: "from_value", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.from_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToValue(); ok {
		if err := adaptationevent.ToValueValidator(v); err != nil {
			return &ValidationError{Name: "to_value", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.to_value": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(adaptationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(adaptationevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(adaptationevent.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromValue(); ok {
		_spec.SetField(adaptationevent.FieldFromValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToValue(); ok {
		_spec.SetField(adaptationevent.FieldToValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(adaptationevent.FieldReasoning, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AdaptationEventUpdateOne is the builder for updating a single AdaptationEvent entity.
type AdaptationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdaptationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AdaptationEventUpdateOne) SetSessionID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableSessionID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AdaptationEventUpdateOne) SetUserID(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableUserID(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *AdaptationEventUpdateOne) SetTrigger(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableTrigger(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AdaptationEventUpdateOne) SetSource(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableSource(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetField sets the "field" field.
func (_u *AdaptationEventUpdateOne) SetField(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetFieldField(v)
	return _u
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableField(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetField(*v)
	}
	return _u
}

// SetFromValue sets the "from_value" field.
func (_u *AdaptationEventUpdateOne) SetFromValue(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetFromValue(v)
	return _u
}

// SetNillableFromValue sets the "from_value" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableFromValue(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetFromValue(*v)
	}
	return _u
}

// SetToValue sets the "to_value" field.
func (_u *AdaptationEventUpdateOne) SetToValue(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetToValue(v)
	return _u
}

// SetNillableToValue sets the "to_value" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableToValue(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetToValue(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AdaptationEventUpdateOne) SetReasoning(v string) *AdaptationEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AdaptationEventUpdateOne) SetNillableReasoning(v *string) *AdaptationEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// Mutation returns the AdaptationEventMutation object of the builder.
func (_u *AdaptationEventUpdateOne) Mutation() *AdaptationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AdaptationEventUpdate builder.
func (_u *AdaptationEventUpdateOne) Where(ps ...predicate.AdaptationEvent) *AdaptationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AdaptationEventUpdateOne) Select(field string, fields ...string) *AdaptationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AdaptationEvent entity.
func (_u *AdaptationEventUpdateOne) Save(ctx context.Context) (*AdaptationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) SaveX(ctx context.Context) *AdaptationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AdaptationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AdaptationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AdaptationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := adaptationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := adaptationevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := adaptationevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := adaptationevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetField(); ok {
		if err := adaptationevent.FieldValidator(v); err != nil {
			return &ValidationError{Name: "field", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.field": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromValue(); ok {
		if err := adaptationevent.FromValueValidator(v); err != nil {
			return &ValidationError{Name: "from_value", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.from_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToValue(); ok {
		if err := adaptationevent.ToValueValidator(v); err != nil {
			return &ValidationError{Name: "to_value", err: fmt.Errorf(`ent: validator failed for field "AdaptationEvent.to_value": %w`, err)}
		}
	}
	return nil
}

func (_u *AdaptationEventUpdateOne) sqlSave(ctx context.Context) (_node *AdaptationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AdaptationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for _, f := range fields {
			if !adaptationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != adaptationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(adaptationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(adaptationevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(adaptationevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(adaptationevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetField(); ok {
		_spec.SetField(adaptationevent.FieldField, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromValue(); ok {
		_spec.SetField(adaptationevent.FieldFromValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToValue(); ok {
		_spec.SetField(adaptationevent.FieldToValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(adaptationevent.FieldReasoning, field.TypeString, value)
	}
	_node = &AdaptationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{adaptationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
