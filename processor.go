package jsonpatch

import (
	"github.com/rs/zerolog"

	"github.com/brunoga/jsonpatch/internal/adapter"
	"github.com/brunoga/jsonpatch/internal/pointer"
)

// processor applies operations to a single target. It stops reporting to the
// caller after the first failure unless an error handler was given.
type processor struct {
	target  any
	factory *adapter.Factory
	cfg     config
	logger  zerolog.Logger
	onError ErrorHandler

	err *PatchError
}

func (p *processor) failed() bool {
	return p.err != nil
}

func (p *processor) fail(op Operation, path, message string) {
	e := &PatchError{
		AffectedObject: p.target,
		Operation:      op,
		Path:           path,
		Message:        message,
	}

	p.logger.Warn().
		Str("op", string(op.Op)).
		Str("path", path).
		Msg(message)

	if p.onError != nil {
		p.onError(e)
		return
	}
	if p.err == nil {
		p.err = e
	}
}

func (p *processor) apply(op Operation) {
	p.logger.Debug().
		Str("op", string(op.Op)).
		Str("path", op.Path).
		Str("from", op.From).
		Msg("applying operation")

	switch op.Type() {
	case OperationTypeAdd:
		p.add(op, op.Path, op.Value)
	case OperationTypeRemove:
		p.remove(op, op.Path)
	case OperationTypeReplace:
		p.replace(op, op.Path, op.Value)
	case OperationTypeMove:
		p.move(op)
	case OperationTypeCopy:
		p.copy(op)
	case OperationTypeTest:
		p.test(op)
	default:
		p.fail(op, op.Path, invalidOperation(op.Op))
	}
}

// visit resolves the container addressed by the parent of raw and the
// adapter for its last segment.
func (p *processor) visit(op Operation, raw string) (adapter.Node, adapter.Adapter, string, bool) {
	path, err := pointer.Parse(raw)
	if err != nil {
		p.fail(op, raw, invalidValueForPath(raw))
		return adapter.Node{}, nil, "", false
	}

	// Whole document replacement has no container to act on.
	if path.IsRoot() {
		p.fail(op, raw, targetLocationAtPathNotFound(op.Op, raw))
		return adapter.Node{}, nil, "", false
	}

	n, a, ok, msg := adapter.NewVisitor(path, p.factory).TryVisit(adapter.Root(p.target))
	if !ok {
		if msg == "" {
			msg = targetLocationAtPathNotFound(op.Op, raw)
		}
		p.fail(op, raw, msg)
		return adapter.Node{}, nil, "", false
	}

	return n, a, path.Last(), true
}

func (p *processor) add(op Operation, path string, value any) bool {
	n, a, segment, ok := p.visit(op, path)
	if !ok {
		return false
	}
	if ok, msg := a.TryAdd(n, segment, value); !ok {
		p.fail(op, path, msg)
		return false
	}
	return true
}

func (p *processor) remove(op Operation, path string) bool {
	n, a, segment, ok := p.visit(op, path)
	if !ok {
		return false
	}
	if ok, msg := a.TryRemove(n, segment); !ok {
		p.fail(op, path, msg)
		return false
	}
	return true
}

func (p *processor) replace(op Operation, path string, value any) {
	n, a, segment, ok := p.visit(op, path)
	if !ok {
		return
	}
	if ok, msg := a.TryReplace(n, segment, value); !ok {
		p.fail(op, path, msg)
	}
}

func (p *processor) get(op Operation, path string) (any, bool) {
	n, a, segment, ok := p.visit(op, path)
	if !ok {
		return nil, false
	}
	value, ok, msg := a.TryGet(n, segment)
	if !ok {
		p.fail(op, path, msg)
		return nil, false
	}
	return value, true
}

// move keeps the identity of the moved value. A failure at any step leaves
// the earlier steps applied.
func (p *processor) move(op Operation) {
	value, ok := p.get(op, op.From)
	if !ok {
		return
	}

	if !p.remove(op, op.From) {
		return
	}

	p.add(op, op.Path, value)
}

func (p *processor) copy(op Operation) {
	value, ok := p.get(op, op.From)
	if !ok {
		return
	}

	cloned, err := p.cfg.cloner.Clone(value)
	if err != nil {
		p.logger.Debug().Err(err).Str("from", op.From).Msg("clone failed")
		p.fail(op, op.From, cannotCopyProperty(op.From))
		return
	}

	p.add(op, op.Path, cloned)
}

func (p *processor) test(op Operation) {
	if !p.cfg.testEnabled {
		p.fail(op, op.Path, testOperationNotSupported)
		return
	}

	n, a, segment, ok := p.visit(op, op.Path)
	if !ok {
		return
	}
	if ok, msg := a.TryTest(n, segment, op.Value); !ok {
		p.fail(op, op.Path, msg)
	}
}
