package platform

import (
	"errors"
	"testing"

	"github.com/javanstorm/vzconf/internal/legacy"
	"github.com/javanstorm/vzconf/pkg/hypervisor"
)

func TestBlobText(t *testing.T) {
	b := Blob("\x00\x01hardware")
	text, err := b.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "AAFoYXJkd2FyZQ==" {
		t.Errorf("MarshalText = %q", text)
	}

	var back Blob
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if string(back) != string(b) {
		t.Errorf("UnmarshalText = %q, want %q", back, b)
	}

	if err := back.UnmarshalText([]byte("not base64!")); err == nil {
		t.Error("UnmarshalText should reject invalid base64")
	}
}

func TestMacResolve(t *testing.T) {
	complete := Mac{HardwareModel: Blob("hw"), MachineIdentifier: Blob("id"), AuxiliaryStoragePath: "/aux"}

	tests := []struct {
		name    string
		mutate  func(m *Mac)
		wantErr bool
	}{
		{"complete", func(m *Mac) {}, false},
		{"no hardware model", func(m *Mac) { m.HardwareModel = nil }, true},
		{"no machine identifier", func(m *Mac) { m.MachineIdentifier = Blob{} }, true},
		{"no auxiliary storage", func(m *Mac) { m.AuxiliaryStoragePath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := complete
			tt.mutate(&m)
			p, err := m.Resolve()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrIncomplete) {
					t.Errorf("Resolve() error = %v, want ErrIncomplete", err)
				}
				return
			}
			mac, ok := p.(*hypervisor.MacPlatform)
			if !ok {
				t.Fatalf("Resolve() = %T, want *hypervisor.MacPlatform", p)
			}
			if string(mac.HardwareModel) != "hw" || string(mac.MachineIdentifier) != "id" || mac.AuxiliaryStoragePath != "/aux" {
				t.Errorf("Resolve() = %+v", mac)
			}
		})
	}
}

func TestMacResolveCopiesData(t *testing.T) {
	m := &Mac{HardwareModel: Blob("hw"), MachineIdentifier: Blob("id"), AuxiliaryStoragePath: "/aux"}
	p, err := m.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	m.HardwareModel[0] = 'X'
	if got := string(p.(*hypervisor.MacPlatform).HardwareModel); got != "hw" {
		t.Errorf("resolved platform shares memory with source: %q", got)
	}
}

func TestGenericResolve(t *testing.T) {
	p, err := NewGeneric().Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if g := p.(*hypervisor.GenericPlatform); g.MachineIdentifier != nil {
		t.Errorf("fresh generic platform should leave identifier to the hypervisor, got %q", g.MachineIdentifier)
	}

	p, err = (&Generic{MachineIdentifier: Blob("id")}).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if g := p.(*hypervisor.GenericPlatform); string(g.MachineIdentifier) != "id" {
		t.Errorf("MachineIdentifier = %q, want id", g.MachineIdentifier)
	}
}

func TestMigrateMac(t *testing.T) {
	old := &legacy.MacPlatform{HardwareModel: []byte("hw"), MachineIdentifier: []byte("id"), AuxiliaryStoragePath: "/aux"}
	m := MigrateMac(old)
	if string(m.HardwareModel) != "hw" || string(m.MachineIdentifier) != "id" || m.AuxiliaryStoragePath != "/aux" {
		t.Errorf("MigrateMac() = %+v", m)
	}
	old.HardwareModel[0] = 'X'
	if string(m.HardwareModel) != "hw" {
		t.Error("MigrateMac should copy byte data")
	}
}
