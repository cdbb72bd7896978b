package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    EquipmentStatus
		to      EquipmentStatus
		allowed bool
	}{
		{StatusNew, StatusNeedsRepair, true},
		{StatusNew, StatusWorking, true},
		{StatusWorking, StatusNeedsRepair, true},
		{StatusWorking, StatusDisposed, true},
		{StatusNeedsRepair, StatusWorking, true},
		{StatusNeedsRepair, StatusDisposed, true},
		{StatusDisposed, StatusWorking, false},
		{StatusDisposed, StatusNeedsRepair, false},
		{StatusDisposed, StatusNew, false},
		{StatusWorking, StatusNew, false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestDisposedIsTerminal(t *testing.T) {
	for _, next := range AllEquipmentStatuses {
		assert.Falsef(t, StatusDisposed.CanTransitionTo(next), "DISPOSED -> %s", next)
	}
}

func TestTypeCodeHelpers(t *testing.T) {
	assert.True(t, TypeComputer.SupportsDisks())
	assert.True(t, TypeNotebook.SupportsDisks())
	assert.True(t, TypeMonoblok.SupportsDisks())
	assert.False(t, TypeProjector.SupportsDisks())

	assert.True(t, TypeMonoblok.SupportsGPUs())
	assert.False(t, TypeComputer.SupportsGPUs())

	assert.True(t, TypeMonitor.Valid())
	assert.False(t, EquipmentTypeCode("toaster").Valid())
}
