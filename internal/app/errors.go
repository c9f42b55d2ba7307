package app

import "errors"

var (
	// ErrEmptyToken is returned by Login when the supplied token is blank.
	ErrEmptyToken = errors.New("empty access token")

	// ErrNoSession is returned by RestoreSession when no credential is
	// stored locally.
	ErrNoSession = errors.New("no stored session")
)
