package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"inventory-system/internal/dto"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

// specVariants — таблица диспетчеризации: код типа → конструктор
// структуры атрибутов. Выбор варианта только по коду, отображаемые
// имена типов здесь не участвуют.
var specVariants = map[constants.EquipmentTypeCode]func() interface{}{
	constants.TypeComputer:   func() interface{} { return &dto.ComputerSpecAttributes{} },
	constants.TypeProjector:  func() interface{} { return &dto.ProjectorSpecAttributes{} },
	constants.TypePrinter:    func() interface{} { return &dto.PrinterSpecAttributes{} },
	constants.TypeTV:         func() interface{} { return &dto.TVSpecAttributes{} },
	constants.TypeRouter:     func() interface{} { return &dto.RouterSpecAttributes{} },
	constants.TypeNotebook:   func() interface{} { return &dto.NotebookSpecAttributes{} },
	constants.TypeMonoblok:   func() interface{} { return &dto.MonoblokSpecAttributes{} },
	constants.TypeWhiteboard: func() interface{} { return &dto.WhiteboardSpecAttributes{} },
	constants.TypeExtender:   func() interface{} { return &dto.ExtenderSpecAttributes{} },
	constants.TypeMonitor:    func() interface{} { return &dto.MonitorSpecAttributes{} },
}

// decodeSpecAttributes строго декодирует JSON атрибутов в структуру
// своего варианта: неизвестные поля — ошибка.
func decodeSpecAttributes(code constants.EquipmentTypeCode, raw json.RawMessage) (interface{}, error) {
	newVariant, ok := specVariants[code]
	if !ok {
		return nil, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Неизвестный код типа оборудования: %s", code), nil, nil)
	}

	target := newVariant()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest,
			"Атрибуты не соответствуют форме спецификации данного типа", err, nil)
	}
	return target, nil
}
