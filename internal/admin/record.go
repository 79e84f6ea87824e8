package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	apperrors "go-gin-seat-booking/pkg/app_errors"
)

// fieldsOf 依 JSON 輸出順序回傳欄位名稱與值
func fieldsOf(obj any) ([]string, map[string]any, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, nil, err
	}

	values := make(map[string]any)
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(values))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		names = append(names, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, nil, err
		}
	}
	return names, values, nil
}

// decodeInto 將 JSON 表單套用到 obj 上，id 一律忽略
func decodeInto(body []byte, obj any) error {
	form := make(map[string]json.RawMessage)
	if err := json.Unmarshal(body, &form); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	delete(form, "id")

	b, err := json.Marshal(form)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, obj); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}

// compareValues 比較兩個 JSON 值；nil 排最前，型別不同時以字串比較
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// sortRows 依 ordering 穩定排序
func sortRows(rows []map[string]any, ordering []string) {
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range ordering {
			field, desc := strings.TrimPrefix(o, "-"), strings.HasPrefix(o, "-")
			c := compareValues(rows[i][field], rows[j][field])
			if c == 0 {
				continue
			}
			if desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}
