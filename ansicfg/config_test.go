package ansicfg

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Policy != PolicyModern {
		t.Errorf("default policy: got %q, want %q", cfg.Policy, PolicyModern)
	}
	if cfg.PaletteName != "xterm256" {
		t.Errorf("default palette: got %q", cfg.PaletteName)
	}
	if cfg.IceMode {
		t.Error("default ice mode should be false")
	}
}

func TestLoadFallsBackToDefaultWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want default config", cfg)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	want := Config{
		Policy:      PolicyDOS,
		PaletteName: "cga16",
		ThemeName:   "nord",
		IceMode:     true,
	}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}
