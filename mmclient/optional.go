// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

// Opt is an optional request field. The zero value is absent, so fields the
// caller does not mention are never serialized.
type Opt[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

func None[T any]() Opt[T] {
	return Opt[T]{}
}

// FromPtr converts a nil-able pointer into an Opt.
func FromPtr[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return Some(*p)
}

func (o Opt[T]) IsSet() bool { return o.set }

func (o Opt[T]) Get() (T, bool) { return o.value, o.set }

// AddOpt adds key to the JSON fields of r only if o is set.
func AddOpt[T any](r *Request, key string, o Opt[T]) {
	if v, ok := o.Get(); ok {
		r.AddToJSON(key, v)
	}
}

// AddOptMultipart adds key to the multipart fields of r only if o is set.
func AddOptMultipart[T any](r *Request, key string, o Opt[T]) {
	if v, ok := o.Get(); ok {
		r.AddToMultipartFormData(key, v)
	}
}
