package params

import "errors"

// ErrUnknownOverlayField signals that an overlay policy names a fee field that does not exist
var ErrUnknownOverlayField = errors.New("unknown overlay field")

// ErrInvalidBaseConfigVersions signals that no base config versions have been provided
var ErrInvalidBaseConfigVersions = errors.New("invalid base config versions")

// ErrMissingExtCosts signals that a base config file has no ext costs section
var ErrMissingExtCosts = errors.New("missing ext costs section")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")
