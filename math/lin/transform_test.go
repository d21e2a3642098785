package lin

import (
	"fmt"
	"testing"
)

func TestAppRotatesAroundYThenTranslates(t *testing.T) {
	t1 := NewT().SetLoc(5, 0, 0).SetAa(0, 1, 0, Rad(90))
	v, want := &V3{2, 0, 0}, &V3{5, 0, -2}
	if t1.App(v); !v.Eq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
}

func TestAppRotatesAroundXThenTranslates(t *testing.T) {
	t1 := NewT().SetLoc(5, 0, 0).SetAa(1, 0, 0, Rad(90))
	v, want := &V3{2, 0, 0}, &V3{7, 0, 0}
	if t1.App(v); !v.Eq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
}

func TestAppRotatesAroundZThenTranslates(t *testing.T) {
	t1 := NewT().SetLoc(5, 0, 0).SetAa(0, 0, 1, Rad(90))
	v, want := &V3{2, 0, 0}, &V3{5, 2, 0}
	if t1.App(v); !v.Eq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
}

func TestMultComposesTwoTransforms(t *testing.T) {
	t1 := NewT().SetLoc(5, 0, 0).SetAa(0, 1, 0, Rad(90))
	t2 := NewT().SetLoc(5, 0, 0).SetAa(0, 0, 1, Rad(90))
	v, want := &V3{2, 0, 0}, &V3{5, 0, -7}
	if t1.Mult(t1, t2).App(v); !v.Aeq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
}

func TestAppSMatchesAppOnEachAxis(t *testing.T) {
	v, t1 := &V3{}, NewT().SetLoc(5, 0, 0).SetAa(1, 0, 0, Rad(90))
	want := &V3{6, 0, 0}
	if v.X, v.Y, v.Z = t1.AppS(1, 0, 0); !v.Eq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
	want = &V3{5, 0, 1} // right-hand rule: +Y rotates to +Z.
	if v.X, v.Y, v.Z = t1.AppS(0, 1, 0); !v.Aeq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
	want = &V3{5, -1, 0} // right-hand rule: +Z rotates to -Y.
	if v.X, v.Y, v.Z = t1.AppS(0, 0, 1); !v.Aeq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
}

func TestInvSUndoesAppS(t *testing.T) {
	v, t1 := &V3{}, NewT().SetLoc(5, 0, 0).SetAa(1, 0, 0, Rad(90))
	want := &V3{0, 1, 0}
	if v.X, v.Y, v.Z = t1.InvS(5, 0, 1); !v.Aeq(want) {
		t.Errorf(dumpFormat, v.Dump(), want.Dump())
	}
}

// Rotating (1,0,0) 90 degrees about Y puts it on -Z, then translating along
// X by 10 should land it at (10, 0, -1).
func TestAppRotateThenTranslate(t *testing.T) {
	v, tr := NewV3S(1, 0, 0), NewT().SetLoc(10, 0, 0).SetAa(0, 1, 0, Rad(90))
	want := NewV3S(10, 0, -1)
	if tr.App(v); !v.Aeq(want) {
		t.Errorf("App: got %s, want %s", v.Dump(), want.Dump())
	}
}

func TestInvUndoesApp(t *testing.T) {
	v, tr := NewV3S(1, 0, 0), NewT().SetLoc(10, 0, 0).SetAa(0, 1, 0, Rad(90))
	tr.App(v)
	tr.Inv(v)
	if !Aeq(v.X, 1) || !Aeq(v.Y, 0) || !Aeq(v.Z, 0) {
		t.Errorf("Inv did not restore the original point: %s", v.Dump())
	}
}

func TestIntegrateRotatingAboutY(t *testing.T) {
	t1, a := NewT(), NewT().SetLoc(0, 0, 0).SetRot(0, 0, 0, 1)
	linv, angv := &V3{0, 0, 0}, &V3{0, 10, 0}
	t1.Integrate(a, linv, angv, 0.02)
	x, y, z, ang := t1.Rot.Aa()
	got := fmt.Sprintf("%f %f %f %f", x, y, z, Deg(ang))
	want := "0.000000 1.000000 0.000000 11.459156"
	if got != want {
		t.Errorf(dumpFormat, got, want)
	}
}

func TestIntegrateRotatingAboutXAndY(t *testing.T) {
	t1, a := NewT(), NewT().SetLoc(0, 0, 0).SetRot(0, 0, 0, 1)
	linv, angv := &V3{0, 0, 0}, &V3{0.5, 0.5, 0}
	t1.Integrate(a, linv, angv, 0.02)
	x, y, z, ang := t1.Rot.Aa()
	got := fmt.Sprintf("%f %f %f %f", x, y, z, Deg(ang))
	want := "0.707107 0.707107 0.000000 0.810285"
	if got != want {
		t.Errorf(dumpFormat, got, want)
	}
}

// Cross-checked against numbers pumped through the bullet physics
// integration code.
func TestIntegrateMatchesBulletReference(t *testing.T) {
	t1, a := NewT(), NewT().SetLoc(-5, 1.388006, -3).SetRot(0.182574, 0.365148, 0.547723, 0.730297)
	linv, angv := &V3{0.516828, -10.105854, 0.000000}, &V3{10.041207, -0.775241, -0.922906}
	t1.Integrate(a, linv, angv, 0.02)
	lx, ly, lz := t1.Loc.GetS()
	rx, ry, rz, rw := t1.Rot.GetS()
	got := fmt.Sprintf("%f %f %f :: %f %f %f %f", lx, ly, lz, rx, ry, rz, rw)
	want := "-4.989663 1.185889 -3.000000 :: 0.253972 0.301044 0.576212 0.716136"
	if got != want {
		t.Errorf(dumpFormat, got, want)
	}
}

// Cross-checked against numbers pumped through the bullet physics
// transform code: AppS and App must agree.
func TestAppSAndAppAgree(t *testing.T) {
	a := NewT().SetLoc(-5.0, 1.388006, -3.0).SetRot(0.182574, 0.365148, 0.547723, 0.730297)
	want1, want2 := &V3{-4.8, 2.7880069, -1.999998}, &V3{-5.2, -0.0119949, -4.000001}

	v1, v2 := NewV3S(a.AppS(1, 1, 1)), NewV3S(a.AppS(-1, -1, -1))
	if !v1.Aeq(want1) {
		t.Errorf(dumpFormat, v1.Dump(), want1.Dump())
	}
	if !v2.Aeq(want2) {
		t.Errorf(dumpFormat, v2.Dump(), want2.Dump())
	}

	v1, v2 = a.App(NewV3S(1, 1, 1)), a.App(NewV3S(-1, -1, -1))
	if !v1.Aeq(want1) {
		t.Errorf(dumpFormat, v1.Dump(), want1.Dump())
	}
	if !v2.Aeq(want2) {
		t.Errorf(dumpFormat, v2.Dump(), want2.Dump())
	}
}
