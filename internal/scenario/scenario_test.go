package scenario

import (
	"math/rand"
	"testing"
)

func testParams() Params {
	return Params{
		Bodies:      100,
		Mass:        2000,
		CentralMass: 1e7,
		Spin:        0.05,
		Radius:      1.0,
		G:           1.0,
	}
}

func TestRegistryList(t *testing.T) {
	infos := List()
	if len(infos) == 0 {
		t.Fatal("no scenarios registered")
	}

	// Sorted by ID.
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}

	for _, want := range []string{"binary", "cloud", "collision", "disk", "sphere"} {
		if !Exists(want) {
			t.Errorf("expected scenario %q to be registered", want)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-scenario"); err == nil {
		t.Error("Get() on unknown ID should fail")
	}
}

func TestBuildersProduceRequestedCount(t *testing.T) {
	p := testParams()

	for _, info := range List() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Get(info.ID)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", info.ID, err)
			}

			rng := rand.New(rand.NewSource(1))
			if s.ThreeD {
				bodies := s.Build3(p, rng)
				if len(bodies) != p.Bodies {
					t.Errorf("Build3 produced %d bodies, expected %d", len(bodies), p.Bodies)
				}
				for i, b := range bodies {
					if b.Mass <= 0 {
						t.Errorf("body %d has non-positive mass %v", i, b.Mass)
					}
				}
				return
			}

			bodies := s.Build(p, rng)
			if len(bodies) != p.Bodies {
				t.Errorf("Build produced %d bodies, expected %d", len(bodies), p.Bodies)
			}
			for i, b := range bodies {
				if b.Mass <= 0 {
					t.Errorf("body %d has non-positive mass %v", i, b.Mass)
				}
			}
		})
	}
}

func TestBuildersAreDeterministic(t *testing.T) {
	p := testParams()
	s, err := Get("disk")
	if err != nil {
		t.Fatalf("Get(disk) failed: %v", err)
	}

	a := s.Build(p, rand.New(rand.NewSource(42)))
	b := s.Build(p, rand.New(rand.NewSource(42)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("body %d differs between identically seeded builds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDiskCentralBody(t *testing.T) {
	p := testParams()
	s, _ := Get("disk")
	bodies := s.Build(p, rand.New(rand.NewSource(5)))

	first := bodies[0]
	if first.Mass != p.CentralMass {
		t.Errorf("central body mass = %v, expected %v", first.Mass, p.CentralMass)
	}
	if first.Pos.X != 0 || first.Pos.Y != 0 {
		t.Errorf("central body not at origin: %+v", first.Pos)
	}
}

func TestSphereStaysWithinRadius(t *testing.T) {
	p := testParams()
	s, _ := Get("sphere")
	bodies := s.Build3(p, rand.New(rand.NewSource(9)))

	for i, b := range bodies {
		if b.Pos.Len() > p.Radius*1.000001 {
			t.Errorf("body %d at distance %v exceeds radius %v", i, b.Pos.Len(), p.Radius)
		}
	}
}
