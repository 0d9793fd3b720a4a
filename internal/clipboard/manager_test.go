package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeBackend struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, f.readErr }
func (f *fakeBackend) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func TestInternalRegister(t *testing.T) {
	m := NewManager(false)
	assert.Equal(t, "", m.Paste())
	assert.NoError(t, m.Copy("hello\n"))
	assert.Equal(t, "hello\n", m.Paste())
}

func TestBackendMirrorsCopies(t *testing.T) {
	b := &fakeBackend{}
	m := NewManagerWithBackend(b)
	assert.NoError(t, m.Copy("x"))
	assert.Equal(t, "x", b.text)

	b.text = "from elsewhere"
	assert.Equal(t, "from elsewhere", m.Paste())
}

func TestBackendFailuresFallBack(t *testing.T) {
	b := &fakeBackend{writeErr: errors.New("no display"), readErr: errors.New("no display")}
	m := NewManagerWithBackend(b)
	assert.Error(t, m.Copy("kept"))
	assert.Equal(t, "kept", m.Paste())
}
