package domain

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestBuildJSON(t *testing.T) {
	var b Build
	data := `{"name":"A","minDMG":10,"maxDMG":20,"meleeCritical":5,"luck":7,"bonusDamage":null}`
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if b.Name != "A" || b.MinDMG != 10 || b.MaxDMG != 20 {
		t.Errorf("decoded build = %+v", b)
	}
	if want := (Stats{StatMeleeCritical: 5}); !reflect.DeepEqual(b.Stats, want) {
		t.Errorf("Stats = %v, want %v", b.Stats, want)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var again Build
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("Unmarshal(Marshal()) error = %v", err)
	}
	if !reflect.DeepEqual(again, b) {
		t.Errorf("round trip = %+v, want %+v", again, b)
	}
}

func TestBuildJSONWrongType(t *testing.T) {
	var b Build
	if err := json.Unmarshal([]byte(`{"meleeHit":"lots"}`), &b); err == nil {
		t.Error("Unmarshal() error = nil, want error")
	}
}

func TestEnemyJSONDropsDamageRange(t *testing.T) {
	var e Enemy
	if err := json.Unmarshal([]byte(`{"name":"Boss","minDMG":1,"meleeDefense":800}`), &e); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := (Stats{StatMeleeDefense: 800}); !reflect.DeepEqual(e.Stats, want) {
		t.Errorf("Stats = %v, want %v", e.Stats, want)
	}
}

func TestBuildWithCopies(t *testing.T) {
	b := DefaultBuild("A")
	c := b.With(StatMeleeCritical, 5).Without(StatMagicHit)
	if b.Stats[StatMeleeCritical] != 1000 {
		t.Errorf("original meleeCritical = %v, want 1000", b.Stats[StatMeleeCritical])
	}
	if !b.Has(StatMagicHit) || c.Has(StatMagicHit) {
		t.Error("Without mutated the original or kept the stat")
	}
	if c.Value(StatMinDMG) != 100 {
		t.Errorf("Value(minDMG) = %v, want 100", c.Value(StatMinDMG))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		build Build
		want  error
	}{
		{"default", DefaultBuild("A"), nil},
		{"negative stat", DefaultBuild("A").With(StatMeleeHit, -1), ErrNegativeStat},
		{"NaN", DefaultBuild("A").With(StatBonusDamage, math.NaN()), ErrNegativeStat},
		{"inverted range", DefaultBuild("A").With(StatMinDMG, 500), ErrInvalidDamageRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBuild(tt.build)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("ValidateBuild() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("ValidateBuild() error = %v, want %v", err, tt.want)
			}
			var statErr *StatError
			if !errors.As(err, &statErr) {
				t.Fatalf("error %T is not a *StatError", err)
			}
		})
	}

	if err := ValidateEnemy(DefaultEnemy("E").With(StatMeleeDefense, math.Inf(1))); !errors.Is(err, ErrNegativeStat) {
		t.Errorf("ValidateEnemy(Inf) error = %v, want ErrNegativeStat", err)
	}
}
