// Package palette provides the discrete qualitative colormaps used to color
// turtle paths.
//
// The maps mirror the matplotlib qualitative colormaps (ColorBrewer sets and
// the tab family) as 8-bit integer RGB tables. Colors are addressed by a
// zero-based index; Lookup wraps the index modulo the map length so any
// non-negative index is valid.
package palette

import (
	"fmt"
	"sort"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Func maps a zero-based color index to a Color.
// This is the lookup shape the turtle interpreter consumes.
type Func func(index int) Color

// maps holds every supported colormap, keyed by its matplotlib name.
var maps = map[string][]Color{
	"Set1": {
		{228, 26, 28}, {55, 126, 184}, {77, 175, 74}, {152, 78, 163},
		{255, 127, 0}, {255, 255, 51}, {166, 86, 40}, {247, 129, 191},
		{153, 153, 153},
	},
	"Set2": {
		{102, 194, 165}, {252, 141, 98}, {141, 160, 203}, {231, 138, 195},
		{166, 216, 84}, {255, 217, 47}, {229, 196, 148}, {179, 179, 179},
	},
	"Set3": {
		{141, 211, 199}, {255, 255, 179}, {190, 186, 218}, {251, 128, 114},
		{128, 177, 211}, {253, 180, 98}, {179, 222, 105}, {252, 205, 229},
		{217, 217, 217}, {188, 128, 189}, {204, 235, 197}, {255, 237, 111},
	},
	"Pastel1": {
		{251, 180, 174}, {179, 205, 227}, {204, 235, 197}, {222, 203, 228},
		{254, 217, 166}, {255, 255, 204}, {229, 216, 189}, {253, 218, 236},
		{242, 242, 242},
	},
	"Pastel2": {
		{179, 226, 205}, {253, 205, 172}, {203, 213, 232}, {244, 202, 228},
		{230, 245, 201}, {255, 242, 174}, {241, 226, 204}, {204, 204, 204},
	},
	"Paired": {
		{166, 206, 227}, {31, 120, 180}, {178, 223, 138}, {51, 160, 44},
		{251, 154, 153}, {227, 26, 28}, {253, 191, 111}, {255, 127, 0},
		{202, 178, 214}, {106, 61, 154}, {255, 255, 153}, {177, 89, 40},
	},
	"Accent": {
		{127, 201, 127}, {190, 174, 212}, {253, 192, 134}, {255, 255, 153},
		{56, 108, 176}, {240, 2, 127}, {191, 91, 23}, {102, 102, 102},
	},
	"Dark2": {
		{27, 158, 119}, {217, 95, 2}, {117, 112, 179}, {231, 41, 138},
		{102, 166, 30}, {230, 171, 2}, {166, 118, 29}, {102, 102, 102},
	},
	"tab10": {
		{31, 119, 180}, {255, 127, 14}, {44, 160, 44}, {214, 39, 40},
		{148, 103, 189}, {140, 86, 75}, {227, 119, 194}, {127, 127, 127},
		{188, 189, 34}, {23, 190, 207},
	},
	"tab20": {
		{31, 119, 180}, {174, 199, 232}, {255, 127, 14}, {255, 187, 120},
		{44, 160, 44}, {152, 223, 138}, {214, 39, 40}, {255, 152, 150},
		{148, 103, 189}, {197, 176, 213}, {140, 86, 75}, {196, 156, 148},
		{227, 119, 194}, {247, 182, 210}, {127, 127, 127}, {199, 199, 199},
		{188, 189, 34}, {219, 219, 141}, {23, 190, 207}, {158, 218, 229},
	},
	"tab20b": {
		{57, 59, 121}, {82, 84, 163}, {107, 110, 207}, {156, 158, 222},
		{99, 121, 57}, {140, 162, 82}, {181, 207, 107}, {206, 219, 156},
		{140, 109, 49}, {189, 158, 57}, {231, 186, 82}, {231, 203, 148},
		{132, 60, 57}, {173, 73, 74}, {214, 97, 107}, {231, 150, 156},
		{123, 65, 115}, {165, 81, 148}, {206, 109, 189}, {222, 158, 214},
	},
	"tab20c": {
		{49, 130, 189}, {107, 174, 214}, {158, 202, 225}, {198, 219, 239},
		{230, 85, 13}, {253, 141, 60}, {253, 174, 107}, {253, 208, 162},
		{49, 163, 84}, {116, 196, 118}, {161, 217, 155}, {199, 233, 192},
		{117, 107, 177}, {158, 154, 200}, {188, 189, 220}, {218, 218, 235},
		{99, 99, 99}, {150, 150, 150}, {189, 189, 189}, {217, 217, 217},
	},
}

// DefaultName is the colormap used when none is specified.
const DefaultName = "Set1"

// Names returns the supported colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(maps))
	for name := range maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns the color table for a colormap name.
func Map(name string) ([]Color, bool) {
	colors, ok := maps[name]
	return colors, ok
}

// Lookup returns a lookup function for the named colormap.
// The function wraps indexes modulo the map length, so any non-negative
// index is safe even when the caller's color count exceeds the table size.
func Lookup(name string) (Func, error) {
	colors, ok := maps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (supported: %v)", name, Names())
	}
	return func(index int) Color {
		return colors[index%len(colors)]
	}, nil
}

// Default returns the lookup function for DefaultName.
func Default() Func {
	fn, err := Lookup(DefaultName)
	if err != nil {
		// DefaultName is always present in maps.
		panic(err)
	}
	return fn
}
