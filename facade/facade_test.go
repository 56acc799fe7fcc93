package facade_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brickingsoft/errors"

	"github.com/momentics/streamio/api"
	"github.com/momentics/streamio/emitter"
	"github.com/momentics/streamio/facade"
	"github.com/momentics/streamio/fake"
)

func TestNewRequiresBackend(t *testing.T) {
	if _, err := facade.New(nil, nil); !errors.Is(err, facade.ErrNilBackend) {
		t.Errorf("New = %v, want ErrNilBackend", err)
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := facade.New(nil, fake.New())
	if err != nil {
		t.Fatal(err)
	}
	if s.Config().Backlog != 128 {
		t.Errorf("default backlog = %d", s.Config().Backlog)
	}
	if s.Loop() == nil || s.Pool() == nil || s.Logger() == nil {
		t.Error("facade left components unwired")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streamio.yaml")
	data := []byte("backlog: 64\nreadBufferSize: 4096\nlogLevel: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := facade.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backlog != 64 || cfg.ReadBufferSize != 4096 || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := facade.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file did not fail")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("backlog: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := facade.LoadConfig(path); !errors.Is(err, facade.ErrConfig) {
		t.Errorf("LoadConfig = %v, want ErrConfig", err)
	}
}

func TestStreamsRunOverFacade(t *testing.T) {
	be := fake.New()
	s, err := facade.New(nil, be)
	if err != nil {
		t.Fatal(err)
	}

	st := s.NewStream()
	events := 0
	emitter.On(st.Events(), func(api.WriteEvent) { events++ })

	st.Write([]byte("hi"))
	s.Loop().Step()
	if events != 1 {
		t.Errorf("write events = %d, want 1", events)
	}

	ls := s.ListenStream()
	if !ls.Listening() {
		t.Error("ListenStream did not arm")
	}
	if got := be.Backlog(ls.Native()); got != s.Config().Backlog {
		t.Errorf("backlog = %d, want configured %d", got, s.Config().Backlog)
	}
}
