package plugin

import (
	"strings"
	"testing"
)

func TestUIDGeneration(t *testing.T) {
	tests := []struct {
		name     string
		pluginID string
	}{
		{
			name:     "Template plugin",
			pluginID: "com.vst3go.plugintemplate",
		},
		{
			name:     "New plugin generates deterministic UID",
			pluginID: "com.mycompany.newplugin",
		},
		{
			name:     "Another new plugin generates different UID",
			pluginID: "com.mycompany.anotherplugin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &Info{ID: tt.pluginID}

			uid1 := info.UID()
			uid2 := info.UID()

			if uid1 != uid2 {
				t.Errorf("UID generation is not deterministic for %s", tt.pluginID)
			}

			if err := info.ValidateUID(); err != nil {
				t.Errorf("UID validation failed for %s: %v", tt.pluginID, err)
			}

			// Version 5 (name-based, SHA-1)
			if uid1[6]>>4 != 5 {
				t.Errorf("Expected version 5 UID, got version %d", uid1[6]>>4)
			}
		})
	}
}

func TestUIDUniqueness(t *testing.T) {
	seen := make(map[string]string)
	for _, id := range []string{
		"com.company1.plugin1",
		"com.company1.plugin2",
		"com.company2.plugin1",
		"com.company1.Plugin1",
	} {
		uid := Info{ID: id}.UIDString()
		if other, dup := seen[uid]; dup {
			t.Errorf("%s and %s share UID %s", id, other, uid)
		}
		seen[uid] = id
	}
}

func TestUIDIgnoresDisplayFields(t *testing.T) {
	a := Info{ID: "com.example.plugin", Name: "A", Version: "1.0.0"}
	b := Info{ID: "com.example.plugin", Name: "B", Version: "2.0.0"}
	if a.UID() != b.UID() {
		t.Error("UID must depend on the ID only")
	}
}

func TestValidateUIDRejectsEmptyID(t *testing.T) {
	if err := (Info{Name: "Nameless"}).ValidateUID(); err == nil {
		t.Error("Expected error for empty plugin ID")
	}
}

func TestUIDString(t *testing.T) {
	s := Info{ID: "com.example.plugin"}.UIDString()
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		t.Errorf("Expected canonical UUID string, got %q", s)
	}
}
