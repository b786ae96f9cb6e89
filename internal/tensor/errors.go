package tensor

import "errors"

// Validation failures surface immediately at construction or at a
// configuration-change entry point, wrapped around one of these
// sentinels. There is no recovery logic in this package: every failure
// is fatal to the call and propagates to the caller unchanged.
var (
	// ErrInvalidType reports an array argument that is not a
	// recognized container, scalar or symbolic array.
	ErrInvalidType = errors.New("tensor: invalid array type")

	// ErrInvalidConfiguration reports an index configuration that is
	// not made of 'u'/'l' markers, is empty for a non-scalar tensor,
	// or whose length does not match the tensor's order.
	ErrInvalidConfiguration = errors.New("tensor: invalid index configuration")

	// ErrInvalidMetadata reports unusable tensor metadata, such as an
	// empty coordinate symbol list or a missing metric.
	ErrInvalidMetadata = errors.New("tensor: invalid tensor metadata")
)
