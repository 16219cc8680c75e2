// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/edubox/adapt/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/edubox/adapt/ent/clusterartifact"
	"github.com/edubox/adapt/ent/interactionevent"
	"github.com/edubox/adapt/ent/masterystate"
	"github.com/edubox/adapt/ent/quizattempt"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ClusterArtifact is the client for interacting with the ClusterArtifact builders.
	ClusterArtifact *ClusterArtifactClient
	// InteractionEvent is the client for interacting with the InteractionEvent builders.
	InteractionEvent *InteractionEventClient
	// MasteryState is the client for interacting with the MasteryState builders.
	MasteryState *MasteryStateClient
	// QuizAttempt is the client for interacting with the QuizAttempt builders.
	QuizAttempt *QuizAttemptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ClusterArtifact = NewClusterArtifactClient(c.config)
	c.InteractionEvent = NewInteractionEventClient(c.config)
	c.MasteryState = NewMasteryStateClient(c.config)
	c.QuizAttempt = NewQuizAttemptClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ClusterArtifact:  NewClusterArtifactClient(cfg),
		InteractionEvent: NewInteractionEventClient(cfg),
		MasteryState:     NewMasteryStateClient(cfg),
		QuizAttempt:      NewQuizAttemptClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ClusterArtifact:  NewClusterArtifactClient(cfg),
		InteractionEvent: NewInteractionEventClient(cfg),
		MasteryState:     NewMasteryStateClient(cfg),
		QuizAttempt:      NewQuizAttemptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ClusterArtifact.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ClusterArtifact.Use(hooks...)
	c.InteractionEvent.Use(hooks...)
	c.MasteryState.Use(hooks...)
	c.QuizAttempt.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ClusterArtifact.Intercept(interceptors...)
	c.InteractionEvent.Intercept(interceptors...)
	c.MasteryState.Intercept(interceptors...)
	c.QuizAttempt.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ClusterArtifactMutation:
		return c.ClusterArtifact.mutate(ctx, m)
	case *InteractionEventMutation:
		return c.InteractionEvent.mutate(ctx, m)
	case *MasteryStateMutation:
		return c.MasteryState.mutate(ctx, m)
	case *QuizAttemptMutation:
		return c.QuizAttempt.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ClusterArtifactClient is a client for the ClusterArtifact schema.
type ClusterArtifactClient struct {
	config
}

// NewClusterArtifactClient returns a client for the ClusterArtifact from the given config.
func NewClusterArtifactClient(c config) *ClusterArtifactClient {
	return &ClusterArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clusterartifact.Hooks(f(g(h())))`.
func (c *ClusterArtifactClient) Use(hooks ...Hook) {
	c.hooks.ClusterArtifact = append(c.hooks.ClusterArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clusterartifact.Intercept(f(g(h())))`.
func (c *ClusterArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClusterArtifact = append(c.inters.ClusterArtifact, interceptors...)
}

// Create returns a builder for creating a ClusterArtifact entity.
func (c *ClusterArtifactClient) Create() *ClusterArtifactCreate {
	mutation := newClusterArtifactMutation(c.config, OpCreate)
	return &ClusterArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClusterArtifact entities.
func (c *ClusterArtifactClient) CreateBulk(builders ...*ClusterArtifactCreate) *ClusterArtifactCreateBulk {
	return &ClusterArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClusterArtifactClient) MapCreateBulk(slice any, setFunc func(*ClusterArtifactCreate, int)) *ClusterArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClusterArtifactCreateBulk{err: fmt.Errorf("calling to ClusterArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClusterArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClusterArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClusterArtifact.
func (c *ClusterArtifactClient) Update() *ClusterArtifactUpdate {
	mutation := newClusterArtifactMutation(c.config, OpUpdate)
	return &ClusterArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClusterArtifactClient) UpdateOne(_m *ClusterArtifact) *ClusterArtifactUpdateOne {
	mutation := newClusterArtifactMutation(c.config, OpUpdateOne, withClusterArtifact(_m))
	return &ClusterArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClusterArtifactClient) UpdateOneID(id int) *ClusterArtifactUpdateOne {
	mutation := newClusterArtifactMutation(c.config, OpUpdateOne, withClusterArtifactID(id))
	return &ClusterArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClusterArtifact.
func (c *ClusterArtifactClient) Delete() *ClusterArtifactDelete {
	mutation := newClusterArtifactMutation(c.config, OpDelete)
	return &ClusterArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClusterArtifactClient) DeleteOne(_m *ClusterArtifact) *ClusterArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClusterArtifactClient) DeleteOneID(id int) *ClusterArtifactDeleteOne {
	builder := c.Delete().Where(clusterartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClusterArtifactDeleteOne{builder}
}

// Query returns a query builder for ClusterArtifact.
func (c *ClusterArtifactClient) Query() *ClusterArtifactQuery {
	return &ClusterArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClusterArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a ClusterArtifact entity by its id.
func (c *ClusterArtifactClient) Get(ctx context.Context, id int) (*ClusterArtifact, error) {
	return c.Query().Where(clusterartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClusterArtifactClient) GetX(ctx context.Context, id int) *ClusterArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClusterArtifactClient) Hooks() []Hook {
	return c.hooks.ClusterArtifact
}

// Interceptors returns the client interceptors.
func (c *ClusterArtifactClient) Interceptors() []Interceptor {
	return c.inters.ClusterArtifact
}

func (c *ClusterArtifactClient) mutate(ctx context.Context, m *ClusterArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClusterArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClusterArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClusterArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClusterArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClusterArtifact mutation op: %q", m.Op())
	}
}

// InteractionEventClient is a client for the InteractionEvent schema.
type InteractionEventClient struct {
	config
}

// NewInteractionEventClient returns a client for the InteractionEvent from the given config.
func NewInteractionEventClient(c config) *InteractionEventClient {
	return &InteractionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interactionevent.Hooks(f(g(h())))`.
func (c *InteractionEventClient) Use(hooks ...Hook) {
	c.hooks.InteractionEvent = append(c.hooks.InteractionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interactionevent.Intercept(f(g(h())))`.
func (c *InteractionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InteractionEvent = append(c.inters.InteractionEvent, interceptors...)
}

// Create returns a builder for creating a InteractionEvent entity.
func (c *InteractionEventClient) Create() *InteractionEventCreate {
	mutation := newInteractionEventMutation(c.config, OpCreate)
	return &InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InteractionEvent entities.
func (c *InteractionEventClient) CreateBulk(builders ...*InteractionEventCreate) *InteractionEventCreateBulk {
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionEventClient) MapCreateBulk(slice any, setFunc func(*InteractionEventCreate, int)) *InteractionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionEventCreateBulk{err: fmt.Errorf("calling to InteractionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InteractionEvent.
func (c *InteractionEventClient) Update() *InteractionEventUpdate {
	mutation := newInteractionEventMutation(c.config, OpUpdate)
	return &InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionEventClient) UpdateOne(_m *InteractionEvent) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEvent(_m))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionEventClient) UpdateOneID(id int) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEventID(id))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InteractionEvent.
func (c *InteractionEventClient) Delete() *InteractionEventDelete {
	mutation := newInteractionEventMutation(c.config, OpDelete)
	return &InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionEventClient) DeleteOne(_m *InteractionEvent) *InteractionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionEventClient) DeleteOneID(id int) *InteractionEventDeleteOne {
	builder := c.Delete().Where(interactionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionEventDeleteOne{builder}
}

// Query returns a query builder for InteractionEvent.
func (c *InteractionEventClient) Query() *InteractionEventQuery {
	return &InteractionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteractionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InteractionEvent entity by its id.
func (c *InteractionEventClient) Get(ctx context.Context, id int) (*InteractionEvent, error) {
	return c.Query().Where(interactionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionEventClient) GetX(ctx context.Context, id int) *InteractionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InteractionEventClient) Hooks() []Hook {
	return c.hooks.InteractionEvent
}

// Interceptors returns the client interceptors.
func (c *InteractionEventClient) Interceptors() []Interceptor {
	return c.inters.InteractionEvent
}

func (c *InteractionEventClient) mutate(ctx context.Context, m *InteractionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InteractionEvent mutation op: %q", m.Op())
	}
}

// MasteryStateClient is a client for the MasteryState schema.
type MasteryStateClient struct {
	config
}

// NewMasteryStateClient returns a client for the MasteryState from the given config.
func NewMasteryStateClient(c config) *MasteryStateClient {
	return &MasteryStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masterystate.Hooks(f(g(h())))`.
func (c *MasteryStateClient) Use(hooks ...Hook) {
	c.hooks.MasteryState = append(c.hooks.MasteryState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masterystate.Intercept(f(g(h())))`.
func (c *MasteryStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryState = append(c.inters.MasteryState, interceptors...)
}

// Create returns a builder for creating a MasteryState entity.
func (c *MasteryStateClient) Create() *MasteryStateCreate {
	mutation := newMasteryStateMutation(c.config, OpCreate)
	return &MasteryStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryState entities.
func (c *MasteryStateClient) CreateBulk(builders ...*MasteryStateCreate) *MasteryStateCreateBulk {
	return &MasteryStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryStateClient) MapCreateBulk(slice any, setFunc func(*MasteryStateCreate, int)) *MasteryStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryStateCreateBulk{err: fmt.Errorf("calling to MasteryStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryState.
func (c *MasteryStateClient) Update() *MasteryStateUpdate {
	mutation := newMasteryStateMutation(c.config, OpUpdate)
	return &MasteryStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryStateClient) UpdateOne(_m *MasteryState) *MasteryStateUpdateOne {
	mutation := newMasteryStateMutation(c.config, OpUpdateOne, withMasteryState(_m))
	return &MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryStateClient) UpdateOneID(id int) *MasteryStateUpdateOne {
	mutation := newMasteryStateMutation(c.config, OpUpdateOne, withMasteryStateID(id))
	return &MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryState.
func (c *MasteryStateClient) Delete() *MasteryStateDelete {
	mutation := newMasteryStateMutation(c.config, OpDelete)
	return &MasteryStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryStateClient) DeleteOne(_m *MasteryState) *MasteryStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryStateClient) DeleteOneID(id int) *MasteryStateDeleteOne {
	builder := c.Delete().Where(masterystate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryStateDeleteOne{builder}
}

// Query returns a query builder for MasteryState.
func (c *MasteryStateClient) Query() *MasteryStateQuery {
	return &MasteryStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryState},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryState entity by its id.
func (c *MasteryStateClient) Get(ctx context.Context, id int) (*MasteryState, error) {
	return c.Query().Where(masterystate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryStateClient) GetX(ctx context.Context, id int) *MasteryState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryStateClient) Hooks() []Hook {
	return c.hooks.MasteryState
}

// Interceptors returns the client interceptors.
func (c *MasteryStateClient) Interceptors() []Interceptor {
	return c.inters.MasteryState
}

func (c *MasteryStateClient) mutate(ctx context.Context, m *MasteryStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryState mutation op: %q", m.Op())
	}
}

// QuizAttemptClient is a client for the QuizAttempt schema.
type QuizAttemptClient struct {
	config
}

// NewQuizAttemptClient returns a client for the QuizAttempt from the given config.
func NewQuizAttemptClient(c config) *QuizAttemptClient {
	return &QuizAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizattempt.Hooks(f(g(h())))`.
func (c *QuizAttemptClient) Use(hooks ...Hook) {
	c.hooks.QuizAttempt = append(c.hooks.QuizAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizattempt.Intercept(f(g(h())))`.
func (c *QuizAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAttempt = append(c.inters.QuizAttempt, interceptors...)
}

// Create returns a builder for creating a QuizAttempt entity.
func (c *QuizAttemptClient) Create() *QuizAttemptCreate {
	mutation := newQuizAttemptMutation(c.config, OpCreate)
	return &QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAttempt entities.
func (c *QuizAttemptClient) CreateBulk(builders ...*QuizAttemptCreate) *QuizAttemptCreateBulk {
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAttemptClient) MapCreateBulk(slice any, setFunc func(*QuizAttemptCreate, int)) *QuizAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAttemptCreateBulk{err: fmt.Errorf("calling to QuizAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAttempt.
func (c *QuizAttemptClient) Update() *QuizAttemptUpdate {
	mutation := newQuizAttemptMutation(c.config, OpUpdate)
	return &QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAttemptClient) UpdateOne(_m *QuizAttempt) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttempt(_m))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAttemptClient) UpdateOneID(id int) *QuizAttemptUpdateOne {
	mutation := newQuizAttemptMutation(c.config, OpUpdateOne, withQuizAttemptID(id))
	return &QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAttempt.
func (c *QuizAttemptClient) Delete() *QuizAttemptDelete {
	mutation := newQuizAttemptMutation(c.config, OpDelete)
	return &QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAttemptClient) DeleteOne(_m *QuizAttempt) *QuizAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAttemptClient) DeleteOneID(id int) *QuizAttemptDeleteOne {
	builder := c.Delete().Where(quizattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAttemptDeleteOne{builder}
}

// Query returns a query builder for QuizAttempt.
func (c *QuizAttemptClient) Query() *QuizAttemptQuery {
	return &QuizAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAttempt entity by its id.
func (c *QuizAttemptClient) Get(ctx context.Context, id int) (*QuizAttempt, error) {
	return c.Query().Where(quizattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAttemptClient) GetX(ctx context.Context, id int) *QuizAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAttemptClient) Hooks() []Hook {
	return c.hooks.QuizAttempt
}

// Interceptors returns the client interceptors.
func (c *QuizAttemptClient) Interceptors() []Interceptor {
	return c.inters.QuizAttempt
}

func (c *QuizAttemptClient) mutate(ctx context.Context, m *QuizAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAttempt mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ClusterArtifact, InteractionEvent, MasteryState, QuizAttempt []ent.Hook
	}
	inters struct {
		ClusterArtifact, InteractionEvent, MasteryState, QuizAttempt []ent.Interceptor
	}
)
