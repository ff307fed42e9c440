package manifest

import "testing"

// TestWorldConfigFromEnv tests environment-driven world defaults
func TestWorldConfigFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := WorldConfigFromEnv()
		if err != nil {
			t.Fatalf("WorldConfigFromEnv() error = %v", err)
		}
		if cfg.StageCount != 1 {
			t.Errorf("StageCount = %d, want 1", cfg.StageCount)
		}
		if cfg.NamePrefix != "" {
			t.Errorf("NamePrefix = %q, want empty", cfg.NamePrefix)
		}
	})

	t.Run("From environment", func(t *testing.T) {
		t.Setenv("MANIFEST_NAME_PREFIX", "Ecs")
		t.Setenv("MANIFEST_STAGE_COUNT", "4")

		cfg, err := WorldConfigFromEnv()
		if err != nil {
			t.Fatalf("WorldConfigFromEnv() error = %v", err)
		}
		if cfg.NamePrefix != "Ecs" {
			t.Errorf("NamePrefix = %q, want Ecs", cfg.NamePrefix)
		}
		if cfg.StageCount != 4 {
			t.Errorf("StageCount = %d, want 4", cfg.StageCount)
		}

		world := Factory.NewWorldWithConfig(cfg)
		if world.StageCount() != 4 {
			t.Errorf("World StageCount = %d, want 4", world.StageCount())
		}
		if got := world.nameFromSymbol("EcsFoo"); got != "Foo" {
			t.Errorf("Prefix not applied: nameFromSymbol(EcsFoo) = %q", got)
		}
	})
}
