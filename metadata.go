// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

// MetadataItem is a single key/value pair attached to a Metadata entry,
// both fields indices into the string pool.
type MetadataItem struct {
	Key   uint32
	Value uint32
}

// Metadata is one entry of the metadata pool: a name (must not be the
// reserved zero index) and a list of key/value items.
type Metadata struct {
	Name  uint32
	Items []MetadataItem
}

func parseMetadata(c *Cursor) (Metadata, error) {
	name, err := c.U30()
	if err != nil {
		return Metadata{}, err
	}
	if name == 0 {
		return Metadata{}, &BadValue{Msg: "Invalid metadata name", Val: name}
	}
	itemCount, err := c.U30()
	if err != nil {
		return Metadata{}, err
	}
	items := make([]MetadataItem, 0, itemCount)
	for i := uint32(0); i < itemCount; i++ {
		key, err := c.U30()
		if err != nil {
			return Metadata{}, err
		}
		value, err := c.U30()
		if err != nil {
			return Metadata{}, err
		}
		items = append(items, MetadataItem{Key: key, Value: value})
	}
	return Metadata{Name: name, Items: items}, nil
}
