package checklist

import "encoding/json"

// DefectSuffix marks the defect-code entry that sits next to an item's
// judgment inside the stored data blob.
const DefectSuffix = "_defect"

type Item struct {
	ID    string
	Label string
}

type Category struct {
	ID    string
	Title string
	Items []Item
}

type Section struct {
	ID         string
	Title      string
	Categories []Category
}

// Schema is the fixed inspection sheet for overhead cranes. The ids are part
// of the placeholder keys generated for document templates, so renaming any
// of them breaks templates already uploaded by customers.
var Schema = []Section{
	{
		ID: "hoisting", Title: "巻上装置",
		Categories: []Category{
			{ID: "brake", Title: "ブレーキ", Items: []Item{
				{ID: "lining_wear", Label: "ライニングの摩耗"},
				{ID: "drum_condition", Label: "ドラムの状態"},
				{ID: "stroke", Label: "ストローク"},
				{ID: "spring", Label: "ばねの状態"},
			}},
			{ID: "wire_rope", Title: "ワイヤロープ", Items: []Item{
				{ID: "wear", Label: "摩耗"},
				{ID: "broken_wires", Label: "素線切れ"},
				{ID: "kinks", Label: "型くずれ"},
				{ID: "lubrication", Label: "給油状態"},
			}},
			{ID: "hook", Title: "フック", Items: []Item{
				{ID: "deformation", Label: "変形"},
				{ID: "sheave_rotation", Label: "シーブの回転"},
				{ID: "retainer", Label: "外れ止め"},
			}},
			{ID: "motor", Title: "巻上電動機", Items: []Item{
				{ID: "noise", Label: "異音"},
				{ID: "temperature", Label: "過熱"},
				{ID: "insulation", Label: "絶縁抵抗"},
			}},
		},
	},
	{
		ID: "travel", Title: "走行装置",
		Categories: []Category{
			{ID: "wheels", Title: "車輪", Items: []Item{
				{ID: "tread_wear", Label: "踏面の摩耗"},
				{ID: "flange_wear", Label: "フランジの摩耗"},
			}},
			{ID: "rail", Title: "走行レール", Items: []Item{
				{ID: "fastening", Label: "取付け状態"},
				{ID: "joints", Label: "継ぎ目"},
				{ID: "stopper", Label: "ストッパ"},
			}},
			{ID: "motor", Title: "走行電動機", Items: []Item{
				{ID: "noise", Label: "異音"},
				{ID: "brake_action", Label: "ブレーキの作動"},
			}},
		},
	},
	{
		ID: "traverse", Title: "横行装置",
		Categories: []Category{
			{ID: "trolley", Title: "トロリ", Items: []Item{
				{ID: "frame_condition", Label: "フレームの状態"},
				{ID: "wheel_wear", Label: "車輪の摩耗"},
			}},
			{ID: "rail", Title: "横行レール", Items: []Item{
				{ID: "fastening", Label: "取付け状態"},
				{ID: "stopper", Label: "ストッパ"},
			}},
		},
	},
	{
		ID: "electrical", Title: "電気設備",
		Categories: []Category{
			{ID: "controller", Title: "制御器", Items: []Item{
				{ID: "contactor", Label: "接触器"},
				{ID: "wiring", Label: "配線"},
				{ID: "operation", Label: "作動状態"},
			}},
			{ID: "pendant", Title: "押しボタン開閉器", Items: []Item{
				{ID: "buttons", Label: "ボタンの作動"},
				{ID: "cable", Label: "キャブタイヤケーブル"},
				{ID: "emergency_stop", Label: "非常停止"},
			}},
			{ID: "power_supply", Title: "給電装置", Items: []Item{
				{ID: "trolley_wire", Label: "トロリ線"},
				{ID: "collector", Label: "集電装置"},
				{ID: "grounding", Label: "接地"},
			}},
			{ID: "limit_switch", Title: "リミットスイッチ", Items: []Item{
				{ID: "hoist_upper", Label: "巻過防止装置"},
				{ID: "travel_end", Label: "走行端"},
			}},
		},
	},
	{
		ID: "structure", Title: "構造部分",
		Categories: []Category{
			{ID: "girder", Title: "ガーダ", Items: []Item{
				{ID: "deformation", Label: "変形"},
				{ID: "corrosion", Label: "腐食"},
				{ID: "weld", Label: "溶接部"},
			}},
			{ID: "saddle", Title: "サドル", Items: []Item{
				{ID: "bolts", Label: "ボルトの緩み"},
				{ID: "cracks", Label: "亀裂"},
			}},
			{ID: "walkway", Title: "歩道・手すり", Items: []Item{
				{ID: "condition", Label: "状態"},
			}},
		},
	},
}

// Data is the parsed checklist blob of one work record:
// section id -> category id -> item id (or item id + DefectSuffix) -> code.
type Data map[string]map[string]map[string]string

// Parse never fails. Records written by older app versions carry blobs this
// schema no longer knows, and some legacy rows hold plain garbage; neither
// may block document generation, so anything unparseable becomes empty Data.
func Parse(raw string) Data {
	if raw == "" {
		return Data{}
	}

	var d Data
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Data{}
	}
	if d == nil {
		return Data{}
	}

	return d
}

// Get returns the stored code for a key, or "" when any level is missing.
func (d Data) Get(section, category, key string) string {
	return d[section][category][key]
}
