package testutil

import (
	"encoding/json"

	"github.com/stretchr/testify/assert"
)

func AssertErrorIsAndContains(wantErr error, contains string) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, i ...interface{}) bool {
		return assert.Error(t, err, i...) && assert.ErrorIs(t, err, wantErr) && assert.ErrorContains(t, err, contains)
	}
}

// AssertJSONAttr checks that a raw attribute is present and JSON-equal to want
func AssertJSONAttr(t assert.TestingT, want string, got json.RawMessage, ok bool, msgAndArgs ...interface{}) bool {
	return assert.True(t, ok, msgAndArgs...) && assert.JSONEq(t, want, string(got), msgAndArgs...)
}
