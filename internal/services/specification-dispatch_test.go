package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/dto"
	"inventory-system/pkg/constants"
)

func TestSpecVariants_CoverAllTypeCodes(t *testing.T) {
	for _, code := range constants.AllEquipmentTypes {
		_, ok := specVariants[code]
		assert.Truef(t, ok, "для типа %s нет варианта спецификации", code)
	}
	assert.Len(t, specVariants, len(constants.AllEquipmentTypes))
}

func TestDecodeSpecAttributes_Computer(t *testing.T) {
	raw := json.RawMessage(`{"cpu":"Ryzen 5 5600","ram_gb":16,"os":"Windows 11"}`)

	target, err := decodeSpecAttributes(constants.TypeComputer, raw)
	require.NoError(t, err)

	attrs, ok := target.(*dto.ComputerSpecAttributes)
	require.True(t, ok)
	assert.Equal(t, "Ryzen 5 5600", attrs.CPU)
	assert.Equal(t, 16, attrs.RAMGB)
}

func TestDecodeSpecAttributes_UnknownFieldRejected(t *testing.T) {
	raw := json.RawMessage(`{"model":"Epson EB-X06","lumens":3600,"weight_kg":2.5}`)

	_, err := decodeSpecAttributes(constants.TypeProjector, raw)
	assert.Error(t, err, "чужое поле не проходит строгое декодирование")
}

func TestDecodeSpecAttributes_UnknownCode(t *testing.T) {
	_, err := decodeSpecAttributes("toaster", json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestCheckSubRecords(t *testing.T) {
	disks := []dto.DiskSpecificationDTO{{Position: 0, CapacityGB: 512, DiskType: "SSD"}}
	gpus := []dto.GPUSpecificationDTO{{Position: 0, Model: "GTX 1650", MemoryGB: 4}}

	assert.NoError(t, checkSubRecords(constants.TypeComputer, disks, nil))
	assert.NoError(t, checkSubRecords(constants.TypeMonoblok, disks, gpus))

	assert.Error(t, checkSubRecords(constants.TypeProjector, disks, nil),
		"диски только у компьютеров, ноутбуков и моноблоков")
	assert.Error(t, checkSubRecords(constants.TypeComputer, nil, gpus),
		"видеокарты только у моноблоков")
}
