package types

import "fmt"

// ResourceKind names a node in the ownership chain House -> Floor -> Room -> Utility.
type ResourceKind string

const (
	ResourceHouse   ResourceKind = "house"
	ResourceFloor   ResourceKind = "floor"
	ResourceRoom    ResourceKind = "room"
	ResourceUtility ResourceKind = "utility"
	ResourceReport  ResourceKind = "report"
	ResourceFollow  ResourceKind = "follow"
)

func (k ResourceKind) String() string {
	return string(k)
}

// Action is the verb checked by the role policy.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

func (a Action) String() string {
	return string(a)
}

func NotFoundf(kind ResourceKind, id fmt.Stringer) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}
