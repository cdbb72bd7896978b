package cache

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"inventory-system/pkg/types"
)

// Loader выполняет фактическое чтение (запрос к БД) при промахе кеша.
type Loader func(ctx context.Context) (interface{}, error)

type entry struct {
	value interface{}
	tags  map[Tag]struct{}
	valid bool
	has   bool
}

type call struct {
	done     chan struct{}
	val      interface{}
	err      error
	startGen uint64
}

// Store — разделяемый кеш чтений сущностей с инвалидацией по меткам.
//
// Контракт:
//   - Read: свежая запись возвращается без вызова loader; на один ключ
//     одновременно выполняется не более одного loader, конкурентные
//     читатели получают результат этого единственного вызова;
//   - ошибка чтения оставляет прежнее значение на месте и возвращается
//     вызывающему вместе с ним; автоматических ретраев нет;
//   - Write: при успехе операции все записи, чьи метки пересекаются с
//     инвалидируемыми, помечаются устаревшими; при ошибке инвалидация
//     не выполняется;
//   - записи живут до инвалидации, TTL нет.
type Store struct {
	mu       sync.Mutex
	entries  map[string]*entry
	inflight map[string]*call
	tagGen   map[Tag]uint64
	logger   *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		entries:  make(map[string]*entry),
		inflight: make(map[string]*call),
		tagGen:   make(map[Tag]uint64),
		logger:   logger,
	}
}

// Key строит детерминированный ключ из эндпоинта и параметров:
// одинаковые параметры в любом порядке дают одинаковый ключ.
func Key(endpoint string, params map[string]string) string {
	if len(params) == 0 {
		return endpoint
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	// url.Values.Encode сортирует ключи
	return endpoint + "?" + values.Encode()
}

// ListKey — ключ для спискового чтения с фильтром.
func ListKey(endpoint string, f types.Filter) string {
	params := map[string]string{
		"limit":  fmt.Sprintf("%d", f.Limit),
		"offset": fmt.Sprintf("%d", f.Offset),
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	for field, dir := range f.Sort {
		params["sort["+field+"]"] = dir
	}
	for field, val := range f.Filter {
		params["filter["+field+"]"] = normalizeFilterValue(val)
	}
	return Key(endpoint, params)
}

func normalizeFilterValue(val interface{}) string {
	s := fmt.Sprintf("%v", val)
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		sort.Strings(parts)
		return strings.Join(parts, ",")
	}
	return s
}

// Read возвращает значение по ключу: из кеша, если запись свежая, иначе
// через loader. Конкурентные чтения одного ключа дожидаются общего
// результата, loader вызывается ровно один раз.
func (s *Store) Read(ctx context.Context, key string, tags []Tag, loader Loader) (interface{}, error) {
	s.mu.Lock()

	if e, ok := s.entries[key]; ok && e.valid {
		val := e.value
		s.mu.Unlock()
		return val, nil
	}

	if c, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-c.done:
			return c.val, c.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	tagSet := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		tagSet[t] = struct{}{}
	}

	c := &call{done: make(chan struct{}), startGen: s.genFor(tagSet)}
	s.inflight[key] = c
	s.mu.Unlock()

	val, err := loader(ctx)

	s.mu.Lock()
	delete(s.inflight, key)

	prev := s.entries[key]
	if err != nil {
		// прежнее значение остаётся; ошибка уходит всем ожидающим
		if prev != nil && prev.has {
			c.val = prev.value
		}
		c.err = err
		s.logger.Debug("cache: ошибка загрузки, запись остаётся устаревшей",
			zap.String("key", key), zap.Error(err))
	} else {
		// если за время загрузки метки успели инвалидироваться, значение
		// сохраняем, но помечаем устаревшим: следующий Read перечитает
		fresh := s.genFor(tagSet) == c.startGen
		s.entries[key] = &entry{value: val, tags: tagSet, valid: fresh, has: true}
		c.val = val
	}
	s.mu.Unlock()

	close(c.done)
	return c.val, c.err
}

// Write выполняет мутирующую операцию и при её успехе инвалидирует
// все чтения с пересекающимися метками.
func (s *Store) Write(ctx context.Context, invalidates []Tag, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		return err
	}
	s.Invalidate(invalidates...)
	return nil
}

// Invalidate помечает устаревшими все записи, чьи метки пересекаются
// с переданными. Записи не удаляются: устаревшее значение доступно как
// fallback при неудачном перечитывании.
func (s *Store) Invalidate(tags ...Tag) {
	if len(tags) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tags {
		s.tagGen[t]++
	}

	for key, e := range s.entries {
		if !e.valid {
			continue
		}
		for _, t := range tags {
			if _, ok := e.tags[t]; ok {
				e.valid = false
				s.logger.Debug("cache: запись инвалидирована",
					zap.String("key", key), zap.String("tag", string(t)))
				break
			}
		}
	}
}

// genFor — сумма поколений меток; растёт при каждой инвалидации любой
// из них. Держать под s.mu.
func (s *Store) genFor(tags map[Tag]struct{}) uint64 {
	var gen uint64
	for t := range tags {
		gen += s.tagGen[t]
	}
	return gen
}
