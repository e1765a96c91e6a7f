package errors

import (
	"github.com/LeviLovie/std-utils/log"
)

// Log writes the error with its trace to the ERROR log and returns r unchanged.
func (r Result[T]) Log() Result[T] {
	if r.err != nil {
		log.Errorf("%+v", r.err)
	}
	return r
}

// LogMsg writes "msg: error" with the error's trace to the ERROR log and returns r
// unchanged. The returned error does not carry msg.
func (r Result[T]) LogMsg(msg string) Result[T] {
	if r.err != nil {
		log.Errorf("%s: %+v", msg, r.err)
	}
	return r
}

// WithContext wraps the error in a layer rendering "ctx at 'file@line:column'",
// where the location is the call of WithContext.
func (r Result[T]) WithContext(ctx any) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: r.value, err: contextLayer(r.err, Caller(1), ctx)}
}

// WithContextAt is WithContext with a location supplied by the caller.
func (r Result[T]) WithContextAt(loc Location, ctx any) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: r.value, err: contextLayer(r.err, loc, ctx)}
}

// WithLocation wraps the error in a layer rendering "at 'file@line:column'".
func (r Result[T]) WithLocation() Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: r.value, err: locationLayer(r.err, Caller(1))}
}

// WithLocationAt is WithLocation with a location supplied by the caller.
func (r Result[T]) WithLocationAt(loc Location) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: r.value, err: locationLayer(r.err, loc)}
}

// Log writes "Option is None" to the ERROR log when o is empty.
func (o Option[T]) Log() Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	log.Error(noneText)
	return Fail[T](noneError(1))
}

// LogMsg writes exactly msg to the ERROR log when o is empty; the returned error
// renders msg as well.
func (o Option[T]) LogMsg(msg string) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	log.Error(msg)
	return Fail[T](absentError(msg, 1))
}

// WithContext converts absence into an error and wraps it like Result.WithContext.
func (o Option[T]) WithContext(ctx any) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Fail[T](contextLayer(noneError(1), Caller(1), ctx))
}

// WithContextAt is WithContext with a location supplied by the caller.
func (o Option[T]) WithContextAt(loc Location, ctx any) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Fail[T](contextLayer(noneError(1), loc, ctx))
}

// WithLocation converts absence into an error and wraps it like Result.WithLocation.
func (o Option[T]) WithLocation() Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Fail[T](locationLayer(noneError(1), Caller(1)))
}

// WithLocationAt is WithLocation with a location supplied by the caller.
func (o Option[T]) WithLocationAt(loc Location) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Fail[T](locationLayer(noneError(1), loc))
}

// Log writes err with its trace to the ERROR log and returns it.
func Log(err error) error {
	if err != nil {
		log.Errorf("%+v", err)
	}
	return err
}

// LogMsg writes "msg: err" to the ERROR log and returns err.
func LogMsg(err error, msg string) error {
	if err != nil {
		log.Errorf("%s: %+v", msg, err)
	}
	return err
}

// WithContext wraps err in a layer naming ctx and the call site, or returns nil.
func WithContext(err error, ctx any) error {
	if err == nil {
		return nil
	}
	return contextLayer(err, Caller(1), ctx)
}

// WithLocation wraps err in a layer naming the call site, or returns nil.
func WithLocation(err error) error {
	if err == nil {
		return nil
	}
	return locationLayer(err, Caller(1))
}
