package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials(t *testing.T) {
	assert.NoError(t, Credentials("alice", "pw1"))
	assert.NoError(t, Credentials("alice.smith-1_x", "pw1"))

	assert.Error(t, Credentials("", "pw1"))
	assert.Error(t, Credentials("alice", ""))
	assert.Error(t, Credentials("has space", "pw1"))
	assert.Error(t, Credentials(strings.Repeat("a", 65), "pw1"))
	assert.Error(t, Credentials("alice", strings.Repeat("p", 129)))
}

func TestTranscript(t *testing.T) {
	assert.NoError(t, Transcript("a short note"))
	assert.Error(t, Transcript(""))
	assert.Error(t, Transcript(strings.Repeat("x", 20001)))
}

func TestQuery(t *testing.T) {
	assert.NoError(t, Query("running"))
	assert.Error(t, Query(""))
	assert.Error(t, Query(strings.Repeat("q", 2001)))
}

func TestProfile(t *testing.T) {
	assert.NoError(t, Profile([]string{"exercise more"}, []string{"honesty"}))
	assert.NoError(t, Profile(nil, nil))

	assert.Error(t, Profile([]string{""}, nil))
	assert.Error(t, Profile(nil, []string{""}))
	assert.Error(t, Profile([]string{strings.Repeat("g", 501)}, nil))

	many := make([]string, 51)
	for i := range many {
		many[i] = "g"
	}
	assert.Error(t, Profile(many, nil))
	assert.Error(t, Profile(nil, many))
}
