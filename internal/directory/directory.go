// Package directory holds the static campus map: which classrooms sit on
// which floor of which building, and the human-readable name of each
// classroom. The data is read-only lookup data owned by this package;
// nothing mutates it at runtime.
package directory

import (
	"fmt"
	"sort"
)

// ClassroomRef identifies a classroom in the external scheduling API.
// Both identifiers are opaque, externally assigned.
type ClassroomRef struct {
	ClassroomID string `json:"classroom_id"`
	BuildingID  string `json:"building_id"`
}

// Directory is the read-only campus lookup table.
type Directory struct {
	floors map[string]map[int][]ClassroomRef
	names  map[string]string
}

// New builds a Directory from explicit maps. Used by tests; production code
// uses Campus.
func New(floors map[string]map[int][]ClassroomRef, names map[string]string) *Directory {
	return &Directory{floors: floors, names: names}
}

// Lookup returns the ordered classroom list for a building floor.
// The second return is false for an unknown building or floor.
func (d *Directory) Lookup(building string, floor int) ([]ClassroomRef, bool) {
	b, ok := d.floors[building]
	if !ok {
		return nil, false
	}
	refs, ok := b[floor]
	return refs, ok
}

// Name returns the display name of a classroom and whether it is known.
func (d *Directory) Name(classroomID string) (string, bool) {
	name, ok := d.names[classroomID]
	return name, ok
}

// DisplayName resolves a classroom ID to its display name, synthesizing a
// "Room <id>" placeholder for unknown IDs. Never returns an empty string.
func (d *Directory) DisplayName(classroomID string) string {
	if name, ok := d.names[classroomID]; ok {
		return name
	}
	return fmt.Sprintf("Room %s", classroomID)
}

// Buildings returns the known building keys in sorted order.
func (d *Directory) Buildings() []string {
	keys := make([]string, 0, len(d.floors))
	for k := range d.floors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Floors returns the known floor numbers of a building in ascending order.
// Nil for an unknown building.
func (d *Directory) Floors(building string) []int {
	b, ok := d.floors[building]
	if !ok {
		return nil
	}
	floors := make([]int, 0, len(b))
	for f := range b {
		floors = append(floors, f)
	}
	sort.Ints(floors)
	return floors
}

// Campus returns the directory for the Papardo campus (buildings A, B, SBA).
func Campus() *Directory {
	return New(buildingFloorMap, classroomNames)
}

// Building IDs in the scheduling API.
const (
	buildingA   = "5f6cb2c183c80e0018f4d46"
	buildingB   = "5f6cb2c183c80e0018f4d476"
	buildingSBA = "5f6cb2c183c80e0018f4d474"
)

var buildingFloorMap = map[string]map[int][]ClassroomRef{
	"A": {
		1: {
			{"5f775da9bb0c1600171ae370", buildingA}, // A-1-1
			{"5f778ceabab2280018354c66", buildingA}, // A-1-2
			{"5f77a3c28e23b1001b1b8dd1", buildingA}, // A-1-3
			{"5f77ac63caaa8600182d1aa3", buildingA}, // A-1-4
			{"5f7ede92090abe00160f2b63", buildingA}, // A-1-5
			{"5f7eebfa090abe00160f3069", buildingA}, // A-1-6
			{"6038e6b089cb050017681bc6", buildingA}, // A-1-7
			{"6038e6f495192a0018abbe35", buildingA}, // A-1-8
		},
		0: {
			{"6144b30f4478e70018ec408f", buildingA}, // A-S-1
			{"6144b36b4478e70018ec4091", buildingA}, // A-S-2
			{"6144b4404478e70018ec409d", buildingA}, // A-S-3
			{"6144b4a006477900174b0ce3", buildingA}, // A-S-6
			{"6144b4c14478e70018ec40d5", buildingA}, // A-S-7
			{"6144b4da06477900174b0cf2", buildingA}, // A-S-8
		},
		-1: {
			{"6144b558dec1980017698b99", buildingA}, // A-T-1
			{"6144b5bbdec1980017698b9d", buildingA}, // A-T-2
			{"6144b5f7dec1980017698ba9", buildingA}, // A-T-3
			{"6144b62e06477900174b0cfd", buildingA}, // A-T-4
			{"6144b6dedec1980017698bae", buildingA}, // A-T-5
			{"6144b73f4478e70018ec4130", buildingA}, // A-T-6
			{"6144b6bb4478e70018ec412c", buildingA}, // A-T-7
			{"6144b77e4478e70018ec4133", buildingA}, // A-T-8
			{"6144b7af06477900174b0d23", buildingA}, // A-T-9
			{"6144b65ea673ee001710c74f", buildingA}, // A-T-10
			{"6144b7d7a673ee001710c7bf", buildingA}, // A-T-11
		},
	},

	"B": {
		1: {
			{"6145bffa0058d500181757ed", buildingB}, // B-1-1
			{"6145c03aa58ea000182c799d", buildingB}, // B-1-2
			{"6145c071d73db400176fccb5", buildingB}, // B-1-3
			{"6145c0aa0058d500181757ee", buildingB}, // B-1-4
			{"6145bf9a82d1800017fc0d8f", buildingB}, // B-1-10
		},
		0: {
			{"6038e57140af57001887058c", buildingB}, // B-T-1
		},
		2: {
			{"61533537d62c88001775dc80", buildingB}, // B-2-1
			{"615335f628892300173bd6af", buildingB}, // B-2-7
			{"615333ae28892300173bd5fd", buildingB}, // B-2-18/19
			{"6153366628892300173bd6b0", buildingB}, // B-2-11
			{"6153341c28892300173bd600", buildingB}, // B-2-21
		},
		3: {
			{"6145c15e82d1800017fc0dc6", buildingB}, // B-3-1
			{"6145c189d73db400176fccb8", buildingB}, // B-3-2
			{"650dc6182a9e75003a003c6e", buildingB}, // B-3-24
			{"615336cc28892300173bd6eb", buildingB}, // LAB B-3-03
			{"61533732eaaf860017d57745", buildingB}, // LAB B-3-12
			{"6153378731cd9200175bf597", buildingB}, // LAB B-3-14
			{"61533860eaaf860017d57765", buildingB}, // LAB B-3-17
			{"615338e428892300173bd75a", buildingB}, // LAB B-3-18/20
		},
	},

	"SBA": {
		0: {
			{"5f6cb2c683c80e0018f4d5f5", buildingSBA}, // SBA-T-1
			{"5f6cb2c683c80e0018f4d5ef", buildingSBA}, // SBA-T-2A-B
			{"636e489dfcabcf0f2fdac9e0", buildingSBA}, // SBA-T-2A
			{"6145ba0d0058d5001817571d", buildingSBA}, // SBA-T-2B
			{"5f6cb2c683c80e0018f4d5f3", buildingSBA}, // SBA-T-3
			{"5f6cb2c683c80e0018f4d5f1", buildingSBA}, // SBA-T-4
		},
		1: {
			{"5f6cb2c783c80e0018f4d5fd", buildingSBA}, // SBA-1-1
			{"5f6cb2c783c80e0018f4d5fb", buildingSBA}, // SBA-1-2
			{"5f6cb2c683c80e0018f4d5f9", buildingSBA}, // SBA-1-3
			{"5f6cb2c683c80e0018f4d5f7", buildingSBA}, // SBA-1-4
			{"5f846f301859670017207611", buildingSBA}, // Aula Consorzio CISFA 1° P
		},
		2: {
			{"5f6cb2c583c80e0018f4d582", buildingSBA}, // SBA-2-1
			{"5f6cb2c583c80e0018f4d580", buildingSBA}, // SBA-2-2
			{"5f6cb2c583c80e0018f4d57c", buildingSBA}, // SBA-2-3
			{"5f6cb2c583c80e0018f4d57e", buildingSBA}, // SBA-2-4
		},
	},
}

var classroomNames = map[string]string{
	// Building A, floor 1
	"5f775da9bb0c1600171ae370": "A-1-1",
	"5f778ceabab2280018354c66": "A-1-2",
	"5f77a3c28e23b1001b1b8dd1": "A-1-3",
	"5f77ac63caaa8600182d1aa3": "A-1-4",
	"5f7ede92090abe00160f2b63": "A-1-5",
	"5f7eebfa090abe00160f3069": "A-1-6",
	"6038e6b089cb050017681bc6": "A-1-7",
	"6038e6f495192a0018abbe35": "A-1-8",

	// Building A, basement floor (0)
	"6144b30f4478e70018ec408f": "A-S-1",
	"6144b36b4478e70018ec4091": "A-S-2",
	"6144b4404478e70018ec409d": "A-S-3",
	"6144b4a006477900174b0ce3": "A-S-6",
	"6144b4c14478e70018ec40d5": "A-S-7",
	"6144b4da06477900174b0cf2": "A-S-8",

	// Building A, ground floor (-1)
	"6144b558dec1980017698b99": "A-T-1",
	"6144b5bbdec1980017698b9d": "A-T-2",
	"6144b5f7dec1980017698ba9": "A-T-3",
	"6144b62e06477900174b0cfd": "A-T-4",
	"6144b6dedec1980017698bae": "A-T-5",
	"6144b73f4478e70018ec4130": "A-T-6",
	"6144b6bb4478e70018ec412c": "A-T-7",
	"6144b77e4478e70018ec4133": "A-T-8",
	"6144b7af06477900174b0d23": "A-T-9",
	"6144b65ea673ee001710c74f": "A-T-10",
	"6144b7d7a673ee001710c7bf": "A-T-11",

	// Building B, floor 1
	"6145bffa0058d500181757ed": "B-1-1",
	"6145c03aa58ea000182c799d": "B-1-2",
	"6145c071d73db400176fccb5": "B-1-3",
	"6145c0aa0058d500181757ee": "B-1-4",
	"6145bf9a82d1800017fc0d8f": "B-1-10",

	// Building B, ground floor (0)
	"6038e57140af57001887058c": "B-T-1",

	// Building B, floor 2
	"61533537d62c88001775dc80": "B-2-1",
	"615335f628892300173bd6af": "B-2-7",
	"615333ae28892300173bd5fd": "B-2-18/19",
	"6153366628892300173bd6b0": "B-2-11",
	"6153341c28892300173bd600": "B-2-21",

	// Building B, floor 3
	"6145c15e82d1800017fc0dc6": "B-3-1",
	"6145c189d73db400176fccb8": "B-3-2",
	"650dc6182a9e75003a003c6e": "B-3-24",
	"615336cc28892300173bd6eb": "LAB B-3-03",
	"61533732eaaf860017d57745": "LAB B-3-12",
	"6153378731cd9200175bf597": "LAB B-3-14",
	"61533860eaaf860017d57765": "LAB B-3-17",
	"615338e428892300173bd75a": "LAB B-3-18/20",

	// Building SBA, ground floor (0)
	"5f6cb2c683c80e0018f4d5f5": "SBA-T-1",
	"5f6cb2c683c80e0018f4d5ef": "SBA-T-2A-B",
	"636e489dfcabcf0f2fdac9e0": "SBA-T-2A",
	"6145ba0d0058d5001817571d": "SBA-T-2B",
	"5f6cb2c683c80e0018f4d5f3": "SBA-T-3",
	"5f6cb2c683c80e0018f4d5f1": "SBA-T-4",

	// Building SBA, floor 1
	"5f6cb2c783c80e0018f4d5fd": "SBA-1-1",
	"5f6cb2c783c80e0018f4d5fb": "SBA-1-2",
	"5f6cb2c683c80e0018f4d5f9": "SBA-1-3",
	"5f6cb2c683c80e0018f4d5f7": "SBA-1-4",
	"5f846f301859670017207611": "Aula Consorzio CISFA 1° P",

	// Building SBA, floor 2
	"5f6cb2c583c80e0018f4d582": "SBA-2-1",
	"5f6cb2c583c80e0018f4d580": "SBA-2-2",
	"5f6cb2c583c80e0018f4d57c": "SBA-2-3",
	"5f6cb2c583c80e0018f4d57e": "SBA-2-4",
}
