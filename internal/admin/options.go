package admin

import (
	"fmt"
	"strings"
)

// StrField 以物件的 String() 作為欄位值
const StrField = "__str__"

// Fieldset 編輯頁上的一組欄位
type Fieldset struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// ModelAdmin 一個 model 在管理後台的顯示設定，零值欄位使用預設
type ModelAdmin struct {
	// 排序欄位，- 開頭為遞減
	Ordering    []string
	ListDisplay []string
	Fieldsets   []Fieldset
}

// withDefaults 補上未設定的項目：依 id 遞減排序、列表顯示 __str__、單一 fieldset 含所有欄位
func (m ModelAdmin) withDefaults(fields []string) ModelAdmin {
	if len(m.Ordering) == 0 {
		m.Ordering = []string{"-id"}
	}
	if len(m.ListDisplay) == 0 {
		m.ListDisplay = []string{StrField}
	}
	if len(m.Fieldsets) == 0 {
		editable := make([]string, 0, len(fields))
		for _, f := range fields {
			if f != "id" {
				editable = append(editable, f)
			}
		}
		m.Fieldsets = []Fieldset{{Fields: editable}}
	}
	return m
}

// check 所有引用的欄位都必須存在於 model 上
func (m ModelAdmin) check(name string, fields []string) error {
	known := make(map[string]bool, len(fields)+1)
	for _, f := range fields {
		known[f] = true
	}

	for _, o := range m.Ordering {
		if !known[strings.TrimPrefix(o, "-")] {
			return fmt.Errorf("admin %s: ordering refers to unknown field %q", name, o)
		}
	}
	for _, f := range m.ListDisplay {
		if f != StrField && !known[f] {
			return fmt.Errorf("admin %s: list display refers to unknown field %q", name, f)
		}
	}
	seen := make(map[string]bool)
	for _, fs := range m.Fieldsets {
		for _, f := range fs.Fields {
			if !known[f] {
				return fmt.Errorf("admin %s: fieldset %q refers to unknown field %q", name, fs.Name, f)
			}
			if seen[f] {
				return fmt.Errorf("admin %s: field %q appears in more than one fieldset", name, f)
			}
			seen[f] = true
		}
	}
	return nil
}
