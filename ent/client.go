// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/matrun/matrun/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/matrun/matrun/ent/envreport"
	"github.com/matrun/matrun/ent/gaterun"
	"github.com/matrun/matrun/ent/matrixrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EnvReport is the client for interacting with the EnvReport builders.
	EnvReport *EnvReportClient
	// GateRun is the client for interacting with the GateRun builders.
	GateRun *GateRunClient
	// MatrixRun is the client for interacting with the MatrixRun builders.
	MatrixRun *MatrixRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EnvReport = NewEnvReportClient(c.config)
	c.GateRun = NewGateRunClient(c.config)
	c.MatrixRun = NewMatrixRunClient(c.config)
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
		ctx:       ctx,
		config:    cfg,
		EnvReport: NewEnvReportClient(cfg),
		GateRun:   NewGateRunClient(cfg),
		MatrixRun: NewMatrixRunClient(cfg),
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
		ctx:       ctx,
		config:    cfg,
		EnvReport: NewEnvReportClient(cfg),
		GateRun:   NewGateRunClient(cfg),
		MatrixRun: NewMatrixRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EnvReport.
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
	c.EnvReport.Use(hooks...)
	c.GateRun.Use(hooks...)
	c.MatrixRun.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EnvReport.Intercept(interceptors...)
	c.GateRun.Intercept(interceptors...)
	c.MatrixRun.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EnvReportMutation:
		return c.EnvReport.mutate(ctx, m)
	case *GateRunMutation:
		return c.GateRun.mutate(ctx, m)
	case *MatrixRunMutation:
		return c.MatrixRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EnvReportClient is a client for the EnvReport schema.
type EnvReportClient struct {
	config
}

// NewEnvReportClient returns a client for the EnvReport from the given config.
func NewEnvReportClient(c config) *EnvReportClient {
	return &EnvReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `envreport.Hooks(f(g(h())))`.
func (c *EnvReportClient) Use(hooks ...Hook) {
	c.hooks.EnvReport = append(c.hooks.EnvReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `envreport.Intercept(f(g(h())))`.
func (c *EnvReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnvReport = append(c.inters.EnvReport, interceptors...)
}

// Create returns a builder for creating a EnvReport entity.
func (c *EnvReportClient) Create() *EnvReportCreate {
	mutation := newEnvReportMutation(c.config, OpCreate)
	return &EnvReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnvReport entities.
func (c *EnvReportClient) CreateBulk(builders ...*EnvReportCreate) *EnvReportCreateBulk {
	return &EnvReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnvReportClient) MapCreateBulk(slice any, setFunc func(*EnvReportCreate, int)) *EnvReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnvReportCreateBulk{err: fmt.Errorf("calling to EnvReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnvReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnvReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnvReport.
func (c *EnvReportClient) Update() *EnvReportUpdate {
	mutation := newEnvReportMutation(c.config, OpUpdate)
	return &EnvReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnvReportClient) UpdateOne(_m *EnvReport) *EnvReportUpdateOne {
	mutation := newEnvReportMutation(c.config, OpUpdateOne, withEnvReport(_m))
	return &EnvReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnvReportClient) UpdateOneID(id int) *EnvReportUpdateOne {
	mutation := newEnvReportMutation(c.config, OpUpdateOne, withEnvReportID(id))
	return &EnvReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnvReport.
func (c *EnvReportClient) Delete() *EnvReportDelete {
	mutation := newEnvReportMutation(c.config, OpDelete)
	return &EnvReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnvReportClient) DeleteOne(_m *EnvReport) *EnvReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnvReportClient) DeleteOneID(id int) *EnvReportDeleteOne {
	builder := c.Delete().Where(envreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnvReportDeleteOne{builder}
}

// Query returns a query builder for EnvReport.
func (c *EnvReportClient) Query() *EnvReportQuery {
	return &EnvReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnvReport},
		inters: c.Interceptors(),
	}
}

// Get returns a EnvReport entity by its id.
func (c *EnvReportClient) Get(ctx context.Context, id int) (*EnvReport, error) {
	return c.Query().Where(envreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnvReportClient) GetX(ctx context.Context, id int) *EnvReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnvReportClient) Hooks() []Hook {
	return c.hooks.EnvReport
}

// Interceptors returns the client interceptors.
func (c *EnvReportClient) Interceptors() []Interceptor {
	return c.inters.EnvReport
}

func (c *EnvReportClient) mutate(ctx context.Context, m *EnvReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnvReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnvReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnvReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnvReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnvReport mutation op: %q", m.Op())
	}
}

// GateRunClient is a client for the GateRun schema.
type GateRunClient struct {
	config
}

// NewGateRunClient returns a client for the GateRun from the given config.
func NewGateRunClient(c config) *GateRunClient {
	return &GateRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gaterun.Hooks(f(g(h())))`.
func (c *GateRunClient) Use(hooks ...Hook) {
	c.hooks.GateRun = append(c.hooks.GateRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gaterun.Intercept(f(g(h())))`.
func (c *GateRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.GateRun = append(c.inters.GateRun, interceptors...)
}

// Create returns a builder for creating a GateRun entity.
func (c *GateRunClient) Create() *GateRunCreate {
	mutation := newGateRunMutation(c.config, OpCreate)
	return &GateRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GateRun entities.
func (c *GateRunClient) CreateBulk(builders ...*GateRunCreate) *GateRunCreateBulk {
	return &GateRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GateRunClient) MapCreateBulk(slice any, setFunc func(*GateRunCreate, int)) *GateRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GateRunCreateBulk{err: fmt.Errorf("calling to GateRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GateRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GateRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GateRun.
func (c *GateRunClient) Update() *GateRunUpdate {
	mutation := newGateRunMutation(c.config, OpUpdate)
	return &GateRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GateRunClient) UpdateOne(_m *GateRun) *GateRunUpdateOne {
	mutation := newGateRunMutation(c.config, OpUpdateOne, withGateRun(_m))
	return &GateRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GateRunClient) UpdateOneID(id int) *GateRunUpdateOne {
	mutation := newGateRunMutation(c.config, OpUpdateOne, withGateRunID(id))
	return &GateRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GateRun.
func (c *GateRunClient) Delete() *GateRunDelete {
	mutation := newGateRunMutation(c.config, OpDelete)
	return &GateRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GateRunClient) DeleteOne(_m *GateRun) *GateRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GateRunClient) DeleteOneID(id int) *GateRunDeleteOne {
	builder := c.Delete().Where(gaterun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GateRunDeleteOne{builder}
}

// Query returns a query builder for GateRun.
func (c *GateRunClient) Query() *GateRunQuery {
	return &GateRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGateRun},
		inters: c.Interceptors(),
	}
}

// Get returns a GateRun entity by its id.
func (c *GateRunClient) Get(ctx context.Context, id int) (*GateRun, error) {
	return c.Query().Where(gaterun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GateRunClient) GetX(ctx context.Context, id int) *GateRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GateRunClient) Hooks() []Hook {
	return c.hooks.GateRun
}

// Interceptors returns the client interceptors.
func (c *GateRunClient) Interceptors() []Interceptor {
	return c.inters.GateRun
}

func (c *GateRunClient) mutate(ctx context.Context, m *GateRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GateRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GateRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GateRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GateRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GateRun mutation op: %q", m.Op())
	}
}

// MatrixRunClient is a client for the MatrixRun schema.
type MatrixRunClient struct {
	config
}

// NewMatrixRunClient returns a client for the MatrixRun from the given config.
func NewMatrixRunClient(c config) *MatrixRunClient {
	return &MatrixRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `matrixrun.Hooks(f(g(h())))`.
func (c *MatrixRunClient) Use(hooks ...Hook) {
	c.hooks.MatrixRun = append(c.hooks.MatrixRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `matrixrun.Intercept(f(g(h())))`.
func (c *MatrixRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.MatrixRun = append(c.inters.MatrixRun, interceptors...)
}

// Create returns a builder for creating a MatrixRun entity.
func (c *MatrixRunClient) Create() *MatrixRunCreate {
	mutation := newMatrixRunMutation(c.config, OpCreate)
	return &MatrixRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MatrixRun entities.
func (c *MatrixRunClient) CreateBulk(builders ...*MatrixRunCreate) *MatrixRunCreateBulk {
	return &MatrixRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatrixRunClient) MapCreateBulk(slice any, setFunc func(*MatrixRunCreate, int)) *MatrixRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatrixRunCreateBulk{err: fmt.Errorf("calling to MatrixRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatrixRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatrixRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MatrixRun.
func (c *MatrixRunClient) Update() *MatrixRunUpdate {
	mutation := newMatrixRunMutation(c.config, OpUpdate)
	return &MatrixRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatrixRunClient) UpdateOne(_m *MatrixRun) *MatrixRunUpdateOne {
	mutation := newMatrixRunMutation(c.config, OpUpdateOne, withMatrixRun(_m))
	return &MatrixRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatrixRunClient) UpdateOneID(id int) *MatrixRunUpdateOne {
	mutation := newMatrixRunMutation(c.config, OpUpdateOne, withMatrixRunID(id))
	return &MatrixRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MatrixRun.
func (c *MatrixRunClient) Delete() *MatrixRunDelete {
	mutation := newMatrixRunMutation(c.config, OpDelete)
	return &MatrixRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatrixRunClient) DeleteOne(_m *MatrixRun) *MatrixRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatrixRunClient) DeleteOneID(id int) *MatrixRunDeleteOne {
	builder := c.Delete().Where(matrixrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatrixRunDeleteOne{builder}
}

// Query returns a query builder for MatrixRun.
func (c *MatrixRunClient) Query() *MatrixRunQuery {
	return &MatrixRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatrixRun},
		inters: c.Interceptors(),
	}
}

// Get returns a MatrixRun entity by its id.
func (c *MatrixRunClient) Get(ctx context.Context, id int) (*MatrixRun, error) {
	return c.Query().Where(matrixrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatrixRunClient) GetX(ctx context.Context, id int) *MatrixRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MatrixRunClient) Hooks() []Hook {
	return c.hooks.MatrixRun
}

// Interceptors returns the client interceptors.
func (c *MatrixRunClient) Interceptors() []Interceptor {
	return c.inters.MatrixRun
}

func (c *MatrixRunClient) mutate(ctx context.Context, m *MatrixRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatrixRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatrixRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatrixRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatrixRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MatrixRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EnvReport, GateRun, MatrixRun []ent.Hook
	}
	inters struct {
		EnvReport, GateRun, MatrixRun []ent.Interceptor
	}
)
