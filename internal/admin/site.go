package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"go-gin-seat-booking/internal/cache"
	apperrors "go-gin-seat-booking/pkg/app_errors"
	"go-gin-seat-booking/pkg/logger"

	"go.uber.org/zap"
)

// Object 可在管理後台瀏覽的紀錄
type Object interface {
	GetID() int
	String() string
}

// Store 管理後台存取一個 model 所需的持久層操作
type Store[T Object] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, obj T) (T, error)
	Update(ctx context.Context, obj T) (T, error)
	Delete(ctx context.Context, id int) error
}

// ModelInfo 首頁列出的 model
type ModelInfo struct {
	Name        string     `json:"name"`
	Ordering    []string   `json:"ordering"`
	ListDisplay []string   `json:"list_display"`
	Fieldsets   []Fieldset `json:"fieldsets"`
}

// Row 列表頁的一列
type Row struct {
	ID     int            `json:"id"`
	Values map[string]any `json:"values"`
}

// Changelist 列表頁
type Changelist struct {
	Model    string   `json:"model"`
	Columns  []string `json:"columns"`
	Ordering []string `json:"ordering"`
	Count    int      `json:"count"`
	Results  []Row    `json:"results"`
}

// FieldValue 編輯頁上的一個欄位
type FieldValue struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type FieldsetView struct {
	Name   string       `json:"name"`
	Fields []FieldValue `json:"fields"`
}

// ChangeView 單筆紀錄的編輯頁
type ChangeView struct {
	Model     string         `json:"model"`
	ID        int            `json:"id"`
	Str       string         `json:"__str__"`
	Fieldsets []FieldsetView `json:"fieldsets"`
}

// registration 去除型別參數後的 model 操作
type registration interface {
	info() ModelInfo
	changelist(ctx context.Context) (*Changelist, error)
	changeView(ctx context.Context, id int) (*ChangeView, error)
	add(ctx context.Context, body []byte) (*ChangeView, error)
	change(ctx context.Context, id int, body []byte) (*ChangeView, error)
	delete(ctx context.Context, id int) error
}

// Site 管理後台的 model 註冊表；所有 Register 須在開始服務前完成
type Site struct {
	registry map[string]registration
	order    []string
	cache    cache.ChangelistCache
	// writes 每次寫入遞增；讀取期間有寫入時不回寫快取
	writes atomic.Uint64
}

func NewSite(changelistCache cache.ChangelistCache) *Site {
	if changelistCache == nil {
		changelistCache = cache.NewNoopChangelistCache()
	}
	return &Site{
		registry: make(map[string]registration),
		cache:    changelistCache,
	}
}

// Register 將 model 加入管理後台；opts 為 nil 時全部使用預設
func Register[T Object](s *Site, name string, store Store[T], newObj func() T, opts *ModelAdmin) error {
	if _, ok := s.registry[name]; ok {
		return fmt.Errorf("admin: model %q is already registered", name)
	}

	fields, _, err := fieldsOf(newObj())
	if err != nil {
		return fmt.Errorf("admin %s: %w", name, err)
	}

	var ma ModelAdmin
	if opts != nil {
		ma = *opts
	}
	ma = ma.withDefaults(fields)
	if err := ma.check(name, fields); err != nil {
		return err
	}

	s.registry[name] = &modelRegistration[T]{
		name:   name,
		store:  store,
		newObj: newObj,
		admin:  ma,
	}
	s.order = append(s.order, name)
	return nil
}

// Models 依註冊順序回傳
func (s *Site) Models() []ModelInfo {
	infos := make([]ModelInfo, 0, len(s.order))
	for _, name := range s.order {
		infos = append(infos, s.registry[name].info())
	}
	return infos
}

func (s *Site) lookup(name string) (registration, error) {
	reg, ok := s.registry[name]
	if !ok {
		return nil, apperrors.ErrModelNotRegistered
	}
	return reg, nil
}

func (s *Site) Changelist(ctx context.Context, name string) (*Changelist, error) {
	reg, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	log := logger.WithComponent("admin").With(zap.String("model", name))

	cached, err := s.cache.Get(ctx, name)
	if err == nil {
		var cl Changelist
		if err := json.Unmarshal(cached, &cl); err == nil {
			return &cl, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn("changelist cache read failed", zap.Error(err))
	}

	gen := s.writes.Load()
	cl, err := reg.changelist(ctx)
	if err != nil {
		return nil, err
	}

	// 其他 process（例如 createsuperuser）的寫入只能靠 TTL 或其自行 Invalidate
	if s.writes.Load() != gen {
		return cl, nil
	}
	if payload, err := json.Marshal(cl); err == nil {
		if err := s.cache.Set(ctx, name, payload); err != nil {
			log.Warn("changelist cache write failed", zap.Error(err))
		}
	}
	return cl, nil
}

func (s *Site) ChangeView(ctx context.Context, name string, id int) (*ChangeView, error) {
	reg, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return reg.changeView(ctx, id)
}

func (s *Site) Add(ctx context.Context, name string, body []byte) (*ChangeView, error) {
	reg, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	view, err := reg.add(ctx, body)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return view, nil
}

func (s *Site) Change(ctx context.Context, name string, id int, body []byte) (*ChangeView, error) {
	reg, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	view, err := reg.change(ctx, id, body)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return view, nil
}

func (s *Site) Delete(ctx context.Context, name string, id int) error {
	reg, err := s.lookup(name)
	if err != nil {
		return err
	}
	if err := reg.delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate 刪除會連帶刪除其他 model 的紀錄，因此清除全部列表快取
func (s *Site) invalidate(ctx context.Context) {
	s.writes.Add(1)
	if err := s.cache.Invalidate(ctx, s.order...); err != nil {
		logger.WithComponent("admin").Warn("changelist cache invalidate failed", zap.Error(err))
	}
}

type modelRegistration[T Object] struct {
	name   string
	store  Store[T]
	newObj func() T
	admin  ModelAdmin
}

func (r *modelRegistration[T]) info() ModelInfo {
	return ModelInfo{
		Name:        r.name,
		Ordering:    r.admin.Ordering,
		ListDisplay: r.admin.ListDisplay,
		Fieldsets:   r.admin.Fieldsets,
	}
}

func (r *modelRegistration[T]) changelist(ctx context.Context) (*Changelist, error) {
	objs, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]map[string]any, 0, len(objs))
	for _, obj := range objs {
		_, values, err := fieldsOf(obj)
		if err != nil {
			return nil, err
		}
		values[StrField] = obj.String()
		all = append(all, values)
	}
	sortRows(all, r.admin.Ordering)

	results := make([]Row, 0, len(all))
	for _, values := range all {
		row := Row{Values: make(map[string]any, len(r.admin.ListDisplay))}
		if id, ok := values["id"].(float64); ok {
			row.ID = int(id)
		}
		for _, col := range r.admin.ListDisplay {
			row.Values[col] = values[col]
		}
		results = append(results, row)
	}

	return &Changelist{
		Model:    r.name,
		Columns:  r.admin.ListDisplay,
		Ordering: r.admin.Ordering,
		Count:    len(results),
		Results:  results,
	}, nil
}

func (r *modelRegistration[T]) view(obj T) (*ChangeView, error) {
	_, values, err := fieldsOf(obj)
	if err != nil {
		return nil, err
	}

	sets := make([]FieldsetView, 0, len(r.admin.Fieldsets))
	for _, fs := range r.admin.Fieldsets {
		fv := FieldsetView{Name: fs.Name, Fields: make([]FieldValue, 0, len(fs.Fields))}
		for _, f := range fs.Fields {
			fv.Fields = append(fv.Fields, FieldValue{Name: f, Value: values[f]})
		}
		sets = append(sets, fv)
	}

	return &ChangeView{
		Model:     r.name,
		ID:        obj.GetID(),
		Str:       obj.String(),
		Fieldsets: sets,
	}, nil
}

func (r *modelRegistration[T]) changeView(ctx context.Context, id int) (*ChangeView, error) {
	obj, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.view(obj)
}

func (r *modelRegistration[T]) add(ctx context.Context, body []byte) (*ChangeView, error) {
	obj := r.newObj()
	if err := decodeInto(body, obj); err != nil {
		return nil, err
	}
	if err := validate(obj); err != nil {
		return nil, err
	}

	created, err := r.store.Create(ctx, obj)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("admin").Info("object added",
		zap.String("model", r.name),
		zap.Int("id", created.GetID()),
	)
	return r.view(created)
}

func (r *modelRegistration[T]) change(ctx context.Context, id int, body []byte) (*ChangeView, error) {
	obj, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := decodeInto(body, obj); err != nil {
		return nil, err
	}
	if err := validate(obj); err != nil {
		return nil, err
	}

	updated, err := r.store.Update(ctx, obj)
	if err != nil {
		return nil, err
	}

	logger.WithComponent("admin").Info("object changed",
		zap.String("model", r.name),
		zap.Int("id", id),
	)
	return r.view(updated)
}

func (r *modelRegistration[T]) delete(ctx context.Context, id int) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.WithComponent("admin").Info("object deleted",
		zap.String("model", r.name),
		zap.Int("id", id),
	)
	return nil
}
