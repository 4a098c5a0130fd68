package labels

// Fixed code→label tables shared by the single and batch generation paths.
// Every lookup falls back to the raw code on a miss so that codes added to
// the database before a release never break document generation.

var workTypes = map[string]string{
	"INSPECTION":   "点検",
	"REPAIR":       "修理",
	"MAINTENANCE":  "整備",
	"OVERHAUL":     "分解整備",
	"INSTALLATION": "据付",
}

var judgments = map[string]string{
	"V": "良",
	"○": "良好",
	"△": "要注意",
	"×": "要是正",
	"C": "清掃",
	"L": "給油",
	"A": "調整",
	"T": "増締め",
	"R": "交換",
	"-": "対象外",
}

var projectStatuses = map[string]string{
	"PLANNED":     "計画中",
	"IN_PROGRESS": "進行中",
	"COMPLETED":   "完了",
	"ON_HOLD":     "保留",
	"CANCELLED":   "中止",
}

var defects = map[string]string{
	"01": "摩耗",
	"02": "亀裂",
	"03": "変形",
	"04": "腐食",
	"05": "損傷",
	"06": "緩み",
	"07": "脱落",
	"08": "油漏れ",
	"09": "異音",
	"10": "異常振動",
	"11": "過熱",
	"12": "絶縁不良",
	"13": "接触不良",
	"14": "断線",
	"15": "作動不良",
	"16": "汚損",
	"17": "給油不足",
	"18": "その他",
}

func WorkType(code string) string {
	if label, ok := workTypes[code]; ok {
		return label
	}
	return code
}

func Judgment(code string) string {
	if label, ok := judgments[code]; ok {
		return label
	}
	return code
}

func ProjectStatus(code string) string {
	if label, ok := projectStatuses[code]; ok {
		return label
	}
	return code
}

// Defect formats known codes as "01. 摩耗"; unknown codes pass through as-is.
func Defect(code string) string {
	if name, ok := defects[code]; ok {
		return code + ". " + name
	}
	return code
}
