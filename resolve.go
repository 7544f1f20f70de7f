// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package abc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// maxMultinameResolveDepth bounds TypeName's self-recursive resolution; the
// reference resolver has no such bound, see spec.md's open questions.
const maxMultinameResolveDepth = 32

// poolString indexes the string pool directly, with no substitution: index
// 0 legitimately means the reserved empty string, not "unset". Callers that
// treat a zero index as "any"/"unset" check for it explicitly before
// calling this.
func (f *File) poolString(index uint32) string {
	if int(index) >= len(f.Pool.Strings) {
		return ""
	}
	return f.Pool.Strings[index]
}

// ResolveMultiname turns a multiname-pool index into a qualified,
// human-readable name.
func (f *File) ResolveMultiname(index uint32) string {
	return f.resolveMultinameDepth(index, 0)
}

func (f *File) resolveMultinameDepth(index uint32, depth int) string {
	if depth > maxMultinameResolveDepth {
		return "..."
	}
	if index == 0 || int(index) >= len(f.Pool.Multinames) {
		return "*"
	}

	switch mn := f.Pool.Multinames[index].(type) {
	case *QName:
		ns := "*"
		if mn.Ns != 0 {
			ns = f.poolString(f.Pool.Namespaces[mn.Ns].Name)
		}
		name := resolveNameOrStar(f, mn.Name)
		if ns != "" {
			ns += "."
		}
		return ns + name

	case *RTQName:
		return resolveNameOrStar(f, mn.Name)

	case *RTQNameL:
		return ""

	case *MultinameMulti:
		sets := f.Pool.NamespaceSets[mn.NsSet]
		parts := lo.Map(sets, func(nsIdx uint32, _ int) string {
			return strconv.FormatUint(uint64(nsIdx), 10)
		})
		return fmt.Sprintf("ns sets: %s name: %s", strings.Join(parts, ", "), f.poolString(mn.Name))

	case *MultinameMultiL:
		sets := f.Pool.NamespaceSets[mn.NsSet]
		parts := lo.Map(sets, func(nsIdx uint32, _ int) string {
			ns := f.Pool.Namespaces[nsIdx]
			if ns.Name == 0 {
				return fmt.Sprintf("%s:0", namespaceKindName(ns.Kind))
			}
			return fmt.Sprintf("%s:%s", namespaceKindName(ns.Kind), f.poolString(ns.Name))
		})
		return "ns sets: " + strings.Join(parts, ", ")

	case *TypeName:
		name := f.resolveMultinameDepth(mn.Name, depth+1)
		params := lo.Map(mn.Params, func(p uint32, _ int) string {
			return f.resolveMultinameDepth(p, depth+1)
		})
		return fmt.Sprintf("name: %s params: %s", name, strings.Join(params, ", "))

	default:
		return "*"
	}
}

func resolveNameOrStar(f *File, nameIndex uint32) string {
	if nameIndex == 0 {
		return "*"
	}
	return f.poolString(nameIndex)
}

// ResolveTrait returns a kind-tagged mapping describing t, mirroring the
// reference resolver's per-variant dictionaries.
func (f *File) ResolveTrait(t Trait) map[string]interface{} {
	result := map[string]interface{}{
		"name": f.ResolveMultiname(t.Name),
		"kind": traitKindNames[t.Kind()],
	}

	switch data := t.Data.(type) {
	case SlotTrait:
		result["slot_id"] = data.SlotID
		result["type_name"] = f.ResolveMultiname(data.TypeName)
		if data.VIndex != 0 {
			result["value"] = f.ResolveOptional(Option{Val: data.VIndex, Kind: data.VKind})
		}
	case ClassTrait:
		result["slot_id"] = data.SlotID
		result["class_index"] = data.ClassIndex
	case FunctionTrait:
		result["slot_id"] = data.SlotID
		result["function_info"] = data.FunctionInfo
	case MethodTrait:
		result["disp_id"] = data.DispID
		result["method_info"] = data.MethodInfo
	}

	if len(t.Metadata) > 0 {
		result["metadata"] = t.Metadata
	}
	return result
}

// ResolveOptional dereferences an Option's value against the pool its Kind
// selects. Unrecognised kinds pass Val through unchanged.
func (f *File) ResolveOptional(o Option) interface{} {
	switch o.Kind {
	case OptionKindInt:
		if int(o.Val) < len(f.Pool.Ints) {
			return f.Pool.Ints[o.Val]
		}
	case OptionKindUInt:
		if int(o.Val) < len(f.Pool.UInts) {
			return f.Pool.UInts[o.Val]
		}
	case OptionKindDouble:
		if int(o.Val) < len(f.Pool.Doubles) {
			return f.Pool.Doubles[o.Val]
		}
	case OptionKindUtf8:
		if int(o.Val) < len(f.Pool.Strings) {
			return f.Pool.Strings[o.Val]
		}
	}
	return o.Val
}
