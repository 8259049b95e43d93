package restruct

import (
	"github.com/MatLN8/pdf-restruct/internal/section"
	"github.com/bytedance/sonic"
)

// EncodeJSON serializes a section list or tree with two-space
// indentation. Field order follows the Section struct, so identical
// input always yields byte-identical output.
func EncodeJSON(sections []*section.Section) ([]byte, error) {
	if sections == nil {
		sections = []*section.Section{}
	}
	return sonic.ConfigDefault.MarshalIndent(sections, "", "  ")
}

// DecodeJSON is the inverse of EncodeJSON, used by clients and tests.
func DecodeJSON(data []byte) ([]*section.Section, error) {
	var sections []*section.Section
	if err := sonic.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}
