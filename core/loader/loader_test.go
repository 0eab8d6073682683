package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loads   int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }

func (s *stubFeature) Load(fiber.Router) error {
	s.loads++
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	journal := &stubFeature{name: "journal", enabled: true}
	archive := &stubFeature{name: "archive", enabled: false}
	playground := &stubFeature{name: "playground", enabled: true}

	mgr := NewManager()
	mgr.Register(journal)
	mgr.Register(archive)
	mgr.Register(playground)

	assert.NoError(t, mgr.LoadAll(fiber.New()))
	assert.Equal(t, []string{"journal", "playground"}, mgr.Loaded())
	assert.Equal(t, 1, journal.loads)
	assert.Zero(t, archive.loads)
}

func TestManager_LoadAllFailures(t *testing.T) {
	t.Run("LoadError", func(t *testing.T) {
		boom := errors.New("boom")
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "journal", enabled: true, err: boom})

		err := mgr.LoadAll(fiber.New())
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, mgr.Loaded())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		mgr := NewManager()
		mgr.Register(&stubFeature{name: "journal", enabled: true})
		mgr.Register(&stubFeature{name: "journal", enabled: true})

		assert.ErrorContains(t, mgr.LoadAll(fiber.New()), "registered twice")
	})
}
