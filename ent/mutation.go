// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edubox/adapt/ent/clusterartifact"
	"github.com/edubox/adapt/ent/interactionevent"
	"github.com/edubox/adapt/ent/masterystate"
	"github.com/edubox/adapt/ent/predicate"
	"github.com/edubox/adapt/ent/quizattempt"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClusterArtifact  = "ClusterArtifact"
	TypeInteractionEvent = "InteractionEvent"
	TypeMasteryState     = "MasteryState"
	TypeQuizAttempt      = "QuizAttempt"
)

// ClusterArtifactMutation represents an operation that mutates the ClusterArtifact nodes in the graph.
type ClusterArtifactMutation struct {
	config
	op              Op
	typ             string
	id              *int
	version         *string
	sample_count    *int
	addsample_count *int
	data            *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ClusterArtifact, error)
	predicates      []predicate.ClusterArtifact
}

var _ ent.Mutation = (*ClusterArtifactMutation)(nil)

// clusterartifactOption allows management of the mutation configuration using functional options.
type clusterartifactOption func(*ClusterArtifactMutation)

// newClusterArtifactMutation creates new mutation for the ClusterArtifact entity.
func newClusterArtifactMutation(c config, op Op, opts ...clusterartifactOption) *ClusterArtifactMutation {
	m := &ClusterArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeClusterArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClusterArtifactID sets the ID field of the mutation.
func withClusterArtifactID(id int) clusterartifactOption {
	return func(m *ClusterArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *ClusterArtifact
		)
		m.oldValue = func(ctx context.Context) (*ClusterArtifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClusterArtifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClusterArtifact sets the old ClusterArtifact of the mutation.
func withClusterArtifact(node *ClusterArtifact) clusterartifactOption {
	return func(m *ClusterArtifactMutation) {
		m.oldValue = func(context.Context) (*ClusterArtifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClusterArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClusterArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClusterArtifactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClusterArtifactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClusterArtifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersion sets the "version" field.
func (m *ClusterArtifactMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *ClusterArtifactMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ClusterArtifact entity.
// If the ClusterArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterArtifactMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *ClusterArtifactMutation) ResetVersion() {
	m.version = nil
}

// SetSampleCount sets the "sample_count" field.
func (m *ClusterArtifactMutation) SetSampleCount(i int) {
	m.sample_count = &i
	m.addsample_count = nil
}

// SampleCount returns the value of the "sample_count" field in the mutation.
func (m *ClusterArtifactMutation) SampleCount() (r int, exists bool) {
	v := m.sample_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleCount returns the old "sample_count" field's value of the ClusterArtifact entity.
// If the ClusterArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterArtifactMutation) OldSampleCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleCount: %w", err)
	}
	return oldValue.SampleCount, nil
}

// AddSampleCount adds i to the "sample_count" field.
func (m *ClusterArtifactMutation) AddSampleCount(i int) {
	if m.addsample_count != nil {
		*m.addsample_count += i
	} else {
		m.addsample_count = &i
	}
}

// AddedSampleCount returns the value that was added to the "sample_count" field in this mutation.
func (m *ClusterArtifactMutation) AddedSampleCount() (r int, exists bool) {
	v := m.addsample_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSampleCount resets all changes to the "sample_count" field.
func (m *ClusterArtifactMutation) ResetSampleCount() {
	m.sample_count = nil
	m.addsample_count = nil
}

// SetData sets the "data" field.
func (m *ClusterArtifactMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ClusterArtifactMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ClusterArtifact entity.
// If the ClusterArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterArtifactMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *ClusterArtifactMutation) ResetData() {
	m.data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClusterArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClusterArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClusterArtifact entity.
// If the ClusterArtifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClusterArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClusterArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ClusterArtifactMutation builder.
func (m *ClusterArtifactMutation) Where(ps ...predicate.ClusterArtifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClusterArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClusterArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClusterArtifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClusterArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClusterArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClusterArtifact).
func (m *ClusterArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClusterArtifactMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.version != nil {
		fields = append(fields, clusterartifact.FieldVersion)
	}
	if m.sample_count != nil {
		fields = append(fields, clusterartifact.FieldSampleCount)
	}
	if m.data != nil {
		fields = append(fields, clusterartifact.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, clusterartifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClusterArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clusterartifact.FieldVersion:
		return m.Version()
	case clusterartifact.FieldSampleCount:
		return m.SampleCount()
	case clusterartifact.FieldData:
		return m.Data()
	case clusterartifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClusterArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clusterartifact.FieldVersion:
		return m.OldVersion(ctx)
	case clusterartifact.FieldSampleCount:
		return m.OldSampleCount(ctx)
	case clusterartifact.FieldData:
		return m.OldData(ctx)
	case clusterartifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClusterArtifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClusterArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clusterartifact.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case clusterartifact.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleCount(v)
		return nil
	case clusterartifact.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case clusterartifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClusterArtifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClusterArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addsample_count != nil {
		fields = append(fields, clusterartifact.FieldSampleCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClusterArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clusterartifact.FieldSampleCount:
		return m.AddedSampleCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClusterArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clusterartifact.FieldSampleCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSampleCount(v)
		return nil
	}
	return fmt.Errorf("unknown ClusterArtifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClusterArtifactMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClusterArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClusterArtifactMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClusterArtifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClusterArtifactMutation) ResetField(name string) error {
	switch name {
	case clusterartifact.FieldVersion:
		m.ResetVersion()
		return nil
	case clusterartifact.FieldSampleCount:
		m.ResetSampleCount()
		return nil
	case clusterartifact.FieldData:
		m.ResetData()
		return nil
	case clusterartifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClusterArtifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClusterArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClusterArtifactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClusterArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClusterArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClusterArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClusterArtifactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClusterArtifactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClusterArtifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClusterArtifactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClusterArtifact edge %s", name)
}

// InteractionEventMutation represents an operation that mutates the InteractionEvent nodes in the graph.
type InteractionEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	user_id             *string
	video_id            *string
	pause_count         *int
	addpause_count      *int
	rewatch_count       *int
	addrewatch_count    *int
	skip_ratio          *float64
	addskip_ratio       *float64
	watch_percentage    *float64
	addwatch_percentage *float64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*InteractionEvent, error)
	predicates          []predicate.InteractionEvent
}

var _ ent.Mutation = (*InteractionEventMutation)(nil)

// interactioneventOption allows management of the mutation configuration using functional options.
type interactioneventOption func(*InteractionEventMutation)

// newInteractionEventMutation creates new mutation for the InteractionEvent entity.
func newInteractionEventMutation(c config, op Op, opts ...interactioneventOption) *InteractionEventMutation {
	m := &InteractionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeInteractionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInteractionEventID sets the ID field of the mutation.
func withInteractionEventID(id int) interactioneventOption {
	return func(m *InteractionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *InteractionEvent
		)
		m.oldValue = func(ctx context.Context) (*InteractionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InteractionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInteractionEvent sets the old InteractionEvent of the mutation.
func withInteractionEvent(node *InteractionEvent) interactioneventOption {
	return func(m *InteractionEventMutation) {
		m.oldValue = func(context.Context) (*InteractionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InteractionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InteractionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InteractionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InteractionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InteractionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *InteractionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *InteractionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *InteractionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *InteractionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *InteractionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *InteractionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InteractionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InteractionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUserID sets the "user_id" field.
func (m *InteractionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InteractionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InteractionEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetVideoID sets the "video_id" field.
func (m *InteractionEventMutation) SetVideoID(s string) {
	m.video_id = &s
}

// VideoID returns the value of the "video_id" field in the mutation.
func (m *InteractionEventMutation) VideoID() (r string, exists bool) {
	v := m.video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoID returns the old "video_id" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoID: %w", err)
	}
	return oldValue.VideoID, nil
}

// ResetVideoID resets all changes to the "video_id" field.
func (m *InteractionEventMutation) ResetVideoID() {
	m.video_id = nil
}

// SetPauseCount sets the "pause_count" field.
func (m *InteractionEventMutation) SetPauseCount(i int) {
	m.pause_count = &i
	m.addpause_count = nil
}

// PauseCount returns the value of the "pause_count" field in the mutation.
func (m *InteractionEventMutation) PauseCount() (r int, exists bool) {
	v := m.pause_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseCount returns the old "pause_count" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldPauseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseCount: %w", err)
	}
	return oldValue.PauseCount, nil
}

// AddPauseCount adds i to the "pause_count" field.
func (m *InteractionEventMutation) AddPauseCount(i int) {
	if m.addpause_count != nil {
		*m.addpause_count += i
	} else {
		m.addpause_count = &i
	}
}

// AddedPauseCount returns the value that was added to the "pause_count" field in this mutation.
func (m *InteractionEventMutation) AddedPauseCount() (r int, exists bool) {
	v := m.addpause_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPauseCount resets all changes to the "pause_count" field.
func (m *InteractionEventMutation) ResetPauseCount() {
	m.pause_count = nil
	m.addpause_count = nil
}

// SetRewatchCount sets the "rewatch_count" field.
func (m *InteractionEventMutation) SetRewatchCount(i int) {
	m.rewatch_count = &i
	m.addrewatch_count = nil
}

// RewatchCount returns the value of the "rewatch_count" field in the mutation.
func (m *InteractionEventMutation) RewatchCount() (r int, exists bool) {
	v := m.rewatch_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRewatchCount returns the old "rewatch_count" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldRewatchCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRewatchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRewatchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRewatchCount: %w", err)
	}
	return oldValue.RewatchCount, nil
}

// AddRewatchCount adds i to the "rewatch_count" field.
func (m *InteractionEventMutation) AddRewatchCount(i int) {
	if m.addrewatch_count != nil {
		*m.addrewatch_count += i
	} else {
		m.addrewatch_count = &i
	}
}

// AddedRewatchCount returns the value that was added to the "rewatch_count" field in this mutation.
func (m *InteractionEventMutation) AddedRewatchCount() (r int, exists bool) {
	v := m.addrewatch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRewatchCount resets all changes to the "rewatch_count" field.
func (m *InteractionEventMutation) ResetRewatchCount() {
	m.rewatch_count = nil
	m.addrewatch_count = nil
}

// SetSkipRatio sets the "skip_ratio" field.
func (m *InteractionEventMutation) SetSkipRatio(f float64) {
	m.skip_ratio = &f
	m.addskip_ratio = nil
}

// SkipRatio returns the value of the "skip_ratio" field in the mutation.
func (m *InteractionEventMutation) SkipRatio() (r float64, exists bool) {
	v := m.skip_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipRatio returns the old "skip_ratio" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldSkipRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipRatio: %w", err)
	}
	return oldValue.SkipRatio, nil
}

// AddSkipRatio adds f to the "skip_ratio" field.
func (m *InteractionEventMutation) AddSkipRatio(f float64) {
	if m.addskip_ratio != nil {
		*m.addskip_ratio += f
	} else {
		m.addskip_ratio = &f
	}
}

// AddedSkipRatio returns the value that was added to the "skip_ratio" field in this mutation.
func (m *InteractionEventMutation) AddedSkipRatio() (r float64, exists bool) {
	v := m.addskip_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipRatio resets all changes to the "skip_ratio" field.
func (m *InteractionEventMutation) ResetSkipRatio() {
	m.skip_ratio = nil
	m.addskip_ratio = nil
}

// SetWatchPercentage sets the "watch_percentage" field.
func (m *InteractionEventMutation) SetWatchPercentage(f float64) {
	m.watch_percentage = &f
	m.addwatch_percentage = nil
}

// WatchPercentage returns the value of the "watch_percentage" field in the mutation.
func (m *InteractionEventMutation) WatchPercentage() (r float64, exists bool) {
	v := m.watch_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldWatchPercentage returns the old "watch_percentage" field's value of the InteractionEvent entity.
// If the InteractionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InteractionEventMutation) OldWatchPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWatchPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWatchPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWatchPercentage: %w", err)
	}
	return oldValue.WatchPercentage, nil
}

// AddWatchPercentage adds f to the "watch_percentage" field.
func (m *InteractionEventMutation) AddWatchPercentage(f float64) {
	if m.addwatch_percentage != nil {
		*m.addwatch_percentage += f
	} else {
		m.addwatch_percentage = &f
	}
}

// AddedWatchPercentage returns the value that was added to the "watch_percentage" field in this mutation.
func (m *InteractionEventMutation) AddedWatchPercentage() (r float64, exists bool) {
	v := m.addwatch_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetWatchPercentage resets all changes to the "watch_percentage" field.
func (m *InteractionEventMutation) ResetWatchPercentage() {
	m.watch_percentage = nil
	m.addwatch_percentage = nil
}

// Where appends a list predicates to the InteractionEventMutation builder.
func (m *InteractionEventMutation) Where(ps ...predicate.InteractionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InteractionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InteractionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InteractionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InteractionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InteractionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InteractionEvent).
func (m *InteractionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InteractionEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, interactionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, interactionevent.FieldTimestamp)
	}
	if m.user_id != nil {
		fields = append(fields, interactionevent.FieldUserID)
	}
	if m.video_id != nil {
		fields = append(fields, interactionevent.FieldVideoID)
	}
	if m.pause_count != nil {
		fields = append(fields, interactionevent.FieldPauseCount)
	}
	if m.rewatch_count != nil {
		fields = append(fields, interactionevent.FieldRewatchCount)
	}
	if m.skip_ratio != nil {
		fields = append(fields, interactionevent.FieldSkipRatio)
	}
	if m.watch_percentage != nil {
		fields = append(fields, interactionevent.FieldWatchPercentage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InteractionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldSequence:
		return m.Sequence()
	case interactionevent.FieldTimestamp:
		return m.Timestamp()
	case interactionevent.FieldUserID:
		return m.UserID()
	case interactionevent.FieldVideoID:
		return m.VideoID()
	case interactionevent.FieldPauseCount:
		return m.PauseCount()
	case interactionevent.FieldRewatchCount:
		return m.RewatchCount()
	case interactionevent.FieldSkipRatio:
		return m.SkipRatio()
	case interactionevent.FieldWatchPercentage:
		return m.WatchPercentage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InteractionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interactionevent.FieldSequence:
		return m.OldSequence(ctx)
	case interactionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case interactionevent.FieldUserID:
		return m.OldUserID(ctx)
	case interactionevent.FieldVideoID:
		return m.OldVideoID(ctx)
	case interactionevent.FieldPauseCount:
		return m.OldPauseCount(ctx)
	case interactionevent.FieldRewatchCount:
		return m.OldRewatchCount(ctx)
	case interactionevent.FieldSkipRatio:
		return m.OldSkipRatio(ctx)
	case interactionevent.FieldWatchPercentage:
		return m.OldWatchPercentage(ctx)
	}
	return nil, fmt.Errorf("unknown InteractionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case interactionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case interactionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interactionevent.FieldVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoID(v)
		return nil
	case interactionevent.FieldPauseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseCount(v)
		return nil
	case interactionevent.FieldRewatchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRewatchCount(v)
		return nil
	case interactionevent.FieldSkipRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipRatio(v)
		return nil
	case interactionevent.FieldWatchPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWatchPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InteractionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, interactionevent.FieldSequence)
	}
	if m.addpause_count != nil {
		fields = append(fields, interactionevent.FieldPauseCount)
	}
	if m.addrewatch_count != nil {
		fields = append(fields, interactionevent.FieldRewatchCount)
	}
	if m.addskip_ratio != nil {
		fields = append(fields, interactionevent.FieldSkipRatio)
	}
	if m.addwatch_percentage != nil {
		fields = append(fields, interactionevent.FieldWatchPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InteractionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interactionevent.FieldSequence:
		return m.AddedSequence()
	case interactionevent.FieldPauseCount:
		return m.AddedPauseCount()
	case interactionevent.FieldRewatchCount:
		return m.AddedRewatchCount()
	case interactionevent.FieldSkipRatio:
		return m.AddedSkipRatio()
	case interactionevent.FieldWatchPercentage:
		return m.AddedWatchPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InteractionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interactionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case interactionevent.FieldPauseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPauseCount(v)
		return nil
	case interactionevent.FieldRewatchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRewatchCount(v)
		return nil
	case interactionevent.FieldSkipRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipRatio(v)
		return nil
	case interactionevent.FieldWatchPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWatchPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InteractionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InteractionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InteractionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InteractionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InteractionEventMutation) ResetField(name string) error {
	switch name {
	case interactionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case interactionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case interactionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case interactionevent.FieldVideoID:
		m.ResetVideoID()
		return nil
	case interactionevent.FieldPauseCount:
		m.ResetPauseCount()
		return nil
	case interactionevent.FieldRewatchCount:
		m.ResetRewatchCount()
		return nil
	case interactionevent.FieldSkipRatio:
		m.ResetSkipRatio()
		return nil
	case interactionevent.FieldWatchPercentage:
		m.ResetWatchPercentage()
		return nil
	}
	return fmt.Errorf("unknown InteractionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InteractionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InteractionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InteractionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InteractionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InteractionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InteractionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InteractionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InteractionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InteractionEvent edge %s", name)
}

// MasteryStateMutation represents an operation that mutates the MasteryState nodes in the graph.
type MasteryStateMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	concept_id    *string
	p_known       *float64
	addp_known    *float64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MasteryState, error)
	predicates    []predicate.MasteryState
}

var _ ent.Mutation = (*MasteryStateMutation)(nil)

// masterystateOption allows management of the mutation configuration using functional options.
type masterystateOption func(*MasteryStateMutation)

// newMasteryStateMutation creates new mutation for the MasteryState entity.
func newMasteryStateMutation(c config, op Op, opts ...masterystateOption) *MasteryStateMutation {
	m := &MasteryStateMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryStateID sets the ID field of the mutation.
func withMasteryStateID(id int) masterystateOption {
	return func(m *MasteryStateMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryState
		)
		m.oldValue = func(ctx context.Context) (*MasteryState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryState sets the old MasteryState of the mutation.
func withMasteryState(node *MasteryState) masterystateOption {
	return func(m *MasteryStateMutation) {
		m.oldValue = func(context.Context) (*MasteryState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MasteryStateMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MasteryStateMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MasteryStateMutation) ResetUserID() {
	m.user_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *MasteryStateMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *MasteryStateMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *MasteryStateMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetPKnown sets the "p_known" field.
func (m *MasteryStateMutation) SetPKnown(f float64) {
	m.p_known = &f
	m.addp_known = nil
}

// PKnown returns the value of the "p_known" field in the mutation.
func (m *MasteryStateMutation) PKnown() (r float64, exists bool) {
	v := m.p_known
	if v == nil {
		return
	}
	return *v, true
}

// OldPKnown returns the old "p_known" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldPKnown(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPKnown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPKnown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPKnown: %w", err)
	}
	return oldValue.PKnown, nil
}

// AddPKnown adds f to the "p_known" field.
func (m *MasteryStateMutation) AddPKnown(f float64) {
	if m.addp_known != nil {
		*m.addp_known += f
	} else {
		m.addp_known = &f
	}
}

// AddedPKnown returns the value that was added to the "p_known" field in this mutation.
func (m *MasteryStateMutation) AddedPKnown() (r float64, exists bool) {
	v := m.addp_known
	if v == nil {
		return
	}
	return *v, true
}

// ResetPKnown resets all changes to the "p_known" field.
func (m *MasteryStateMutation) ResetPKnown() {
	m.p_known = nil
	m.addp_known = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MasteryState entity.
// If the MasteryState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MasteryStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryStateMutation builder.
func (m *MasteryStateMutation) Where(ps ...predicate.MasteryState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryState).
func (m *MasteryStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, masterystate.FieldUserID)
	}
	if m.concept_id != nil {
		fields = append(fields, masterystate.FieldConceptID)
	}
	if m.p_known != nil {
		fields = append(fields, masterystate.FieldPKnown)
	}
	if m.updated_at != nil {
		fields = append(fields, masterystate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masterystate.FieldUserID:
		return m.UserID()
	case masterystate.FieldConceptID:
		return m.ConceptID()
	case masterystate.FieldPKnown:
		return m.PKnown()
	case masterystate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masterystate.FieldUserID:
		return m.OldUserID(ctx)
	case masterystate.FieldConceptID:
		return m.OldConceptID(ctx)
	case masterystate.FieldPKnown:
		return m.OldPKnown(ctx)
	case masterystate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masterystate.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case masterystate.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case masterystate.FieldPKnown:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPKnown(v)
		return nil
	case masterystate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryStateMutation) AddedFields() []string {
	var fields []string
	if m.addp_known != nil {
		fields = append(fields, masterystate.FieldPKnown)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masterystate.FieldPKnown:
		return m.AddedPKnown()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masterystate.FieldPKnown:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPKnown(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MasteryState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryStateMutation) ResetField(name string) error {
	switch name {
	case masterystate.FieldUserID:
		m.ResetUserID()
		return nil
	case masterystate.FieldConceptID:
		m.ResetConceptID()
		return nil
	case masterystate.FieldPKnown:
		m.ResetPKnown()
		return nil
	case masterystate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryState edge %s", name)
}

// QuizAttemptMutation represents an operation that mutates the QuizAttempt nodes in the graph.
type QuizAttemptMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	attempt_id       *string
	user_id          *string
	topic_id         *string
	score            *float64
	addscore         *float64
	avg_time         *float64
	addavg_time      *float64
	new_difficulty   *string
	speed_label      *string
	mastery          *float64
	addmastery       *float64
	behavior_cluster *string
	action           *string
	message          *string
	next_difficulty  *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*QuizAttempt, error)
	predicates       []predicate.QuizAttempt
}

var _ ent.Mutation = (*QuizAttemptMutation)(nil)

// quizattemptOption allows management of the mutation configuration using functional options.
type quizattemptOption func(*QuizAttemptMutation)

// newQuizAttemptMutation creates new mutation for the QuizAttempt entity.
func newQuizAttemptMutation(c config, op Op, opts ...quizattemptOption) *QuizAttemptMutation {
	m := &QuizAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAttemptID sets the ID field of the mutation.
func withQuizAttemptID(id int) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAttempt
		)
		m.oldValue = func(ctx context.Context) (*QuizAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAttempt sets the old QuizAttempt of the mutation.
func withQuizAttempt(node *QuizAttempt) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		m.oldValue = func(context.Context) (*QuizAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizAttemptMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizAttemptMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizAttemptMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizAttemptMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizAttemptMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizAttemptMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizAttemptMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizAttemptMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *QuizAttemptMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *QuizAttemptMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *QuizAttemptMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *QuizAttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuizAttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuizAttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *QuizAttemptMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *QuizAttemptMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *QuizAttemptMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetScore sets the "score" field.
func (m *QuizAttemptMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizAttemptMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *QuizAttemptMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizAttemptMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAvgTime sets the "avg_time" field.
func (m *QuizAttemptMutation) SetAvgTime(f float64) {
	m.avg_time = &f
	m.addavg_time = nil
}

// AvgTime returns the value of the "avg_time" field in the mutation.
func (m *QuizAttemptMutation) AvgTime() (r float64, exists bool) {
	v := m.avg_time
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTime returns the old "avg_time" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAvgTime(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTime: %w", err)
	}
	return oldValue.AvgTime, nil
}

// AddAvgTime adds f to the "avg_time" field.
func (m *QuizAttemptMutation) AddAvgTime(f float64) {
	if m.addavg_time != nil {
		*m.addavg_time += f
	} else {
		m.addavg_time = &f
	}
}

// AddedAvgTime returns the value that was added to the "avg_time" field in this mutation.
func (m *QuizAttemptMutation) AddedAvgTime() (r float64, exists bool) {
	v := m.addavg_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTime resets all changes to the "avg_time" field.
func (m *QuizAttemptMutation) ResetAvgTime() {
	m.avg_time = nil
	m.addavg_time = nil
}

// SetNewDifficulty sets the "new_difficulty" field.
func (m *QuizAttemptMutation) SetNewDifficulty(s string) {
	m.new_difficulty = &s
}

// NewDifficulty returns the value of the "new_difficulty" field in the mutation.
func (m *QuizAttemptMutation) NewDifficulty() (r string, exists bool) {
	v := m.new_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldNewDifficulty returns the old "new_difficulty" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldNewDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewDifficulty: %w", err)
	}
	return oldValue.NewDifficulty, nil
}

// ResetNewDifficulty resets all changes to the "new_difficulty" field.
func (m *QuizAttemptMutation) ResetNewDifficulty() {
	m.new_difficulty = nil
}

// SetSpeedLabel sets the "speed_label" field.
func (m *QuizAttemptMutation) SetSpeedLabel(s string) {
	m.speed_label = &s
}

// SpeedLabel returns the value of the "speed_label" field in the mutation.
func (m *QuizAttemptMutation) SpeedLabel() (r string, exists bool) {
	v := m.speed_label
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeedLabel returns the old "speed_label" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldSpeedLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeedLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeedLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeedLabel: %w", err)
	}
	return oldValue.SpeedLabel, nil
}

// ResetSpeedLabel resets all changes to the "speed_label" field.
func (m *QuizAttemptMutation) ResetSpeedLabel() {
	m.speed_label = nil
}

// SetMastery sets the "mastery" field.
func (m *QuizAttemptMutation) SetMastery(f float64) {
	m.mastery = &f
	m.addmastery = nil
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *QuizAttemptMutation) Mastery() (r float64, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// AddMastery adds f to the "mastery" field.
func (m *QuizAttemptMutation) AddMastery(f float64) {
	if m.addmastery != nil {
		*m.addmastery += f
	} else {
		m.addmastery = &f
	}
}

// AddedMastery returns the value that was added to the "mastery" field in this mutation.
func (m *QuizAttemptMutation) AddedMastery() (r float64, exists bool) {
	v := m.addmastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetMastery resets all changes to the "mastery" field.
func (m *QuizAttemptMutation) ResetMastery() {
	m.mastery = nil
	m.addmastery = nil
}

// SetBehaviorCluster sets the "behavior_cluster" field.
func (m *QuizAttemptMutation) SetBehaviorCluster(s string) {
	m.behavior_cluster = &s
}

// BehaviorCluster returns the value of the "behavior_cluster" field in the mutation.
func (m *QuizAttemptMutation) BehaviorCluster() (r string, exists bool) {
	v := m.behavior_cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldBehaviorCluster returns the old "behavior_cluster" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldBehaviorCluster(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBehaviorCluster is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBehaviorCluster requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBehaviorCluster: %w", err)
	}
	return oldValue.BehaviorCluster, nil
}

// ResetBehaviorCluster resets all changes to the "behavior_cluster" field.
func (m *QuizAttemptMutation) ResetBehaviorCluster() {
	m.behavior_cluster = nil
}

// SetAction sets the "action" field.
func (m *QuizAttemptMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *QuizAttemptMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *QuizAttemptMutation) ResetAction() {
	m.action = nil
}

// SetMessage sets the "message" field.
func (m *QuizAttemptMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *QuizAttemptMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *QuizAttemptMutation) ResetMessage() {
	m.message = nil
}

// SetNextDifficulty sets the "next_difficulty" field.
func (m *QuizAttemptMutation) SetNextDifficulty(s string) {
	m.next_difficulty = &s
}

// NextDifficulty returns the value of the "next_difficulty" field in the mutation.
func (m *QuizAttemptMutation) NextDifficulty() (r string, exists bool) {
	v := m.next_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldNextDifficulty returns the old "next_difficulty" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldNextDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextDifficulty: %w", err)
	}
	return oldValue.NextDifficulty, nil
}

// ResetNextDifficulty resets all changes to the "next_difficulty" field.
func (m *QuizAttemptMutation) ResetNextDifficulty() {
	m.next_difficulty = nil
}

// Where appends a list predicates to the QuizAttemptMutation builder.
func (m *QuizAttemptMutation) Where(ps ...predicate.QuizAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAttempt).
func (m *QuizAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAttemptMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, quizattempt.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizattempt.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, quizattempt.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, quizattempt.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, quizattempt.FieldTopicID)
	}
	if m.score != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.avg_time != nil {
		fields = append(fields, quizattempt.FieldAvgTime)
	}
	if m.new_difficulty != nil {
		fields = append(fields, quizattempt.FieldNewDifficulty)
	}
	if m.speed_label != nil {
		fields = append(fields, quizattempt.FieldSpeedLabel)
	}
	if m.mastery != nil {
		fields = append(fields, quizattempt.FieldMastery)
	}
	if m.behavior_cluster != nil {
		fields = append(fields, quizattempt.FieldBehaviorCluster)
	}
	if m.action != nil {
		fields = append(fields, quizattempt.FieldAction)
	}
	if m.message != nil {
		fields = append(fields, quizattempt.FieldMessage)
	}
	if m.next_difficulty != nil {
		fields = append(fields, quizattempt.FieldNextDifficulty)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldSequence:
		return m.Sequence()
	case quizattempt.FieldTimestamp:
		return m.Timestamp()
	case quizattempt.FieldAttemptID:
		return m.AttemptID()
	case quizattempt.FieldUserID:
		return m.UserID()
	case quizattempt.FieldTopicID:
		return m.TopicID()
	case quizattempt.FieldScore:
		return m.Score()
	case quizattempt.FieldAvgTime:
		return m.AvgTime()
	case quizattempt.FieldNewDifficulty:
		return m.NewDifficulty()
	case quizattempt.FieldSpeedLabel:
		return m.SpeedLabel()
	case quizattempt.FieldMastery:
		return m.Mastery()
	case quizattempt.FieldBehaviorCluster:
		return m.BehaviorCluster()
	case quizattempt.FieldAction:
		return m.Action()
	case quizattempt.FieldMessage:
		return m.Message()
	case quizattempt.FieldNextDifficulty:
		return m.NextDifficulty()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizattempt.FieldSequence:
		return m.OldSequence(ctx)
	case quizattempt.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizattempt.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case quizattempt.FieldUserID:
		return m.OldUserID(ctx)
	case quizattempt.FieldTopicID:
		return m.OldTopicID(ctx)
	case quizattempt.FieldScore:
		return m.OldScore(ctx)
	case quizattempt.FieldAvgTime:
		return m.OldAvgTime(ctx)
	case quizattempt.FieldNewDifficulty:
		return m.OldNewDifficulty(ctx)
	case quizattempt.FieldSpeedLabel:
		return m.OldSpeedLabel(ctx)
	case quizattempt.FieldMastery:
		return m.OldMastery(ctx)
	case quizattempt.FieldBehaviorCluster:
		return m.OldBehaviorCluster(ctx)
	case quizattempt.FieldAction:
		return m.OldAction(ctx)
	case quizattempt.FieldMessage:
		return m.OldMessage(ctx)
	case quizattempt.FieldNextDifficulty:
		return m.OldNextDifficulty(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizattempt.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizattempt.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case quizattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quizattempt.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case quizattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizattempt.FieldAvgTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTime(v)
		return nil
	case quizattempt.FieldNewDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewDifficulty(v)
		return nil
	case quizattempt.FieldSpeedLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeedLabel(v)
		return nil
	case quizattempt.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	case quizattempt.FieldBehaviorCluster:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBehaviorCluster(v)
		return nil
	case quizattempt.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case quizattempt.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case quizattempt.FieldNextDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizattempt.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.addavg_time != nil {
		fields = append(fields, quizattempt.FieldAvgTime)
	}
	if m.addmastery != nil {
		fields = append(fields, quizattempt.FieldMastery)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldSequence:
		return m.AddedSequence()
	case quizattempt.FieldScore:
		return m.AddedScore()
	case quizattempt.FieldAvgTime:
		return m.AddedAvgTime()
	case quizattempt.FieldMastery:
		return m.AddedMastery()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizattempt.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case quizattempt.FieldAvgTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTime(v)
		return nil
	case quizattempt.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMastery(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ResetField(name string) error {
	switch name {
	case quizattempt.FieldSequence:
		m.ResetSequence()
		return nil
	case quizattempt.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizattempt.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case quizattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case quizattempt.FieldTopicID:
		m.ResetTopicID()
		return nil
	case quizattempt.FieldScore:
		m.ResetScore()
		return nil
	case quizattempt.FieldAvgTime:
		m.ResetAvgTime()
		return nil
	case quizattempt.FieldNewDifficulty:
		m.ResetNewDifficulty()
		return nil
	case quizattempt.FieldSpeedLabel:
		m.ResetSpeedLabel()
		return nil
	case quizattempt.FieldMastery:
		m.ResetMastery()
		return nil
	case quizattempt.FieldBehaviorCluster:
		m.ResetBehaviorCluster()
		return nil
	case quizattempt.FieldAction:
		m.ResetAction()
		return nil
	case quizattempt.FieldMessage:
		m.ResetMessage()
		return nil
	case quizattempt.FieldNextDifficulty:
		m.ResetNextDifficulty()
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizAttempt edge %s", name)
}
