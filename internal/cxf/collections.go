package cxf

import (
	"github.com/nvinuesa/go-cxf"

	"github.com/nvinuesa/csvporter/internal/model"
)

// BuildCollections creates one flat collection per distinct vault name, in
// order of first appearance. items[i] must be the item generated for records[i].
// Vault names are kept whole: "Work/Servers" is a single collection.
func BuildCollections(records []model.Record, items []cxf.Item) []cxf.Collection {
	var collections []cxf.Collection
	byVault := make(map[string]int)

	for i, r := range records {
		if r.Vault == "" || i >= len(items) {
			continue
		}

		idx, ok := byVault[r.Vault]
		if !ok {
			idx = len(collections)
			byVault[r.Vault] = idx
			collections = append(collections, cxf.Collection{
				ID:    generateBase64URLID(),
				Title: r.Vault,
			})
		}

		collections[idx].Items = append(collections[idx].Items, cxf.LinkedItem{
			Item: items[i].ID,
		})
	}

	return collections
}
