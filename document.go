package jsonpatch

import (
	"github.com/brunoga/jsonpatch/internal/adapter"
	"github.com/brunoga/jsonpatch/internal/log"
)

// Document is an ordered list of operations together with the configuration
// used to apply them. The zero value is an empty document with the default
// configuration.
//
// A Document is not safe for concurrent mutation. Applying the same document
// concurrently to distinct targets is safe.
type Document struct {
	Operations []Operation

	cfg     config
	factory *adapter.Factory
}

// New returns an empty Document configured with opts.
func New(opts ...Option) *Document {
	return NewDocument(nil, opts...)
}

// NewDocument returns a Document holding ops and configured with opts.
func NewDocument(ops []Operation, opts ...Option) *Document {
	d := &Document{Operations: ops}
	for _, opt := range opts {
		opt.apply(&d.cfg)
	}
	d.cfg = d.cfg.withDefaults()
	d.factory = adapter.NewFactory(d.cfg.resolver)
	return d
}

// Supports reports whether d applies operations of type t.
func (d *Document) Supports(t OperationType) bool {
	if t == OperationTypeTest {
		return d.cfg.testEnabled
	}
	return Supported(t)
}

func (d *Document) append(op Operation) *Document {
	d.Operations = append(d.Operations, op)
	return d
}

// Add appends an operation that adds value at path.
func (d *Document) Add(path string, value any) *Document {
	return d.append(Operation{Op: OperationTypeAdd, Path: path, Value: value})
}

// Remove appends an operation that removes the value at path.
func (d *Document) Remove(path string) *Document {
	return d.append(Operation{Op: OperationTypeRemove, Path: path})
}

// Replace appends an operation that replaces the value at path.
func (d *Document) Replace(path string, value any) *Document {
	return d.append(Operation{Op: OperationTypeReplace, Path: path, Value: value})
}

// Move appends an operation that moves the value at from to path.
func (d *Document) Move(from, path string) *Document {
	return d.append(Operation{Op: OperationTypeMove, From: from, Path: path})
}

// Copy appends an operation that copies the value at from to path.
func (d *Document) Copy(from, path string) *Document {
	return d.append(Operation{Op: OperationTypeCopy, From: from, Path: path})
}

// Test appends an operation that checks the value at path equals value.
func (d *Document) Test(path string, value any) *Document {
	return d.append(Operation{Op: OperationTypeTest, Path: path, Value: value})
}

// ApplyTo applies the operations of d to target in order. Target should be a
// pointer so that changes are visible to the caller; maps and dynamic objects
// can also be passed directly.
//
// When onError is nil the first failure stops processing and is returned as
// a *PatchError. Otherwise every failure is passed to onError, processing
// continues with the next operation and ApplyTo returns nil. Operations that
// were applied before a failure are never rolled back.
func (d *Document) ApplyTo(target any, onError ErrorHandler) error {
	cfg, factory := d.cfg, d.factory
	if factory == nil {
		// Zero value document: defaults are computed per call.
		cfg = cfg.withDefaults()
		factory = adapter.NewFactory(cfg.resolver)
	}

	p := &processor{
		target:  target,
		factory: factory,
		cfg:     cfg,
		logger:  log.ComponentLogger(*cfg.logger, "jsonpatch", "ApplyTo"),
		onError: onError,
	}

	for _, op := range d.Operations {
		p.apply(op)
		if p.failed() {
			return p.err
		}
	}

	return nil
}
