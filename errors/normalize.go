package errors

// canonical returns err as an *Error, wrapping it when it is some other error.
func canonical(err error, skip int) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return passThrough(err, skip+1)
}

// absentError builds the error standing for an empty Option, rendering exactly msg.
func absentError(msg string, skip int) *Error {
	e := wrap(msg, nil, skip+1)
	e.absent = true
	return e
}

// noneError is the absent error rendering "Option is None" through ErrNone.
func noneError(skip int) *Error {
	e := passThrough(ErrNone, skip+1)
	e.absent = true
	return e
}

// Normalize converts the error into an *Error. The rendering is unchanged and the
// original error stays reachable through Unwrap.
func (r Result[T]) Normalize() Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: r.value, err: canonical(r.err, 1)}
}

// NormalizeMsg converts the error into an *Error rendering "msg: cause".
func (r Result[T]) NormalizeMsg(msg string) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{value: r.value, err: wrap(msg, r.err, 1)}
}

// Normalize converts the failure message into an *Error rendering it.
func (s StringResult[T]) Normalize() Result[T] {
	if !s.failed {
		return Ok(s.value)
	}
	return Fail[T](wrap(s.msg, nil, 1))
}

// NormalizeMsg converts the failure message into an *Error rendering "msg: message".
func (s StringResult[T]) NormalizeMsg(msg string) Result[T] {
	if !s.failed {
		return Ok(s.value)
	}
	return Fail[T](wrap(msg, errString(s.msg), 1))
}

// Normalize converts absence into an *Error rendering "Option is None".
func (o Option[T]) Normalize() Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Fail[T](noneError(1))
}

// NormalizeMsg converts absence into an *Error rendering exactly msg. There is no
// cause to join, the error still matches ErrNone.
func (o Option[T]) NormalizeMsg(msg string) Result[T] {
	if o.ok {
		return Ok(o.value)
	}
	return Fail[T](absentError(msg, 1))
}

// Normalize returns err as an *Error, or nil when err is nil.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	return canonical(err, 1)
}

// NormalizeMsg returns an *Error rendering "msg: err", or nil when err is nil.
func NormalizeMsg(err error, msg string) error {
	if err == nil {
		return nil
	}
	return wrap(msg, err, 1)
}
