package hardware

import "strings"

const (
	// DefaultCPUScore is returned for processors that match no rule.
	DefaultCPUScore = 12000
	// DefaultGPUScore is returned for adapters that match no rule.
	DefaultGPUScore = 6000
)

// ScoreRule maps a model name to its reference score. A rule matches when
// Model is a case-insensitive substring of the device name.
type ScoreRule struct {
	Model string
	Score int
}

// KeywordRule is a coarse family bracket used when no ScoreRule matches.
type KeywordRule struct {
	Keywords []string
	Score    int
}

// CPUScoreTable holds Cinebench R23 single-core results. Variants that share
// a prefix (14900KS, 14900KF, 14900K) must stay ordered longest first.
var CPUScoreTable = []ScoreRule{
	// Intel Core i9
	{"Intel Core i9-14900KS", 2375},
	{"Intel Core i9-14900KF", 2290},
	{"Intel Core i9-14900K", 2293},
	{"Intel Core i9-13900KS", 2339},
	{"Intel Core i9-13900KF", 2262},
	{"Intel Core i9-13900K", 2076},
	{"Intel Core i9-13900", 2191},

	// Intel Core i7
	{"Intel Core i7-14700KF", 2160},
	{"Intel Core i7-14700K", 2072},
	{"Intel Core i7-13700KF", 2126},
	{"Intel Core i7-13700K", 2126},
	{"Intel Core i7-13700", 2107},

	// Intel Core i5
	{"Intel Core i5-14600KF", 2097},
	{"Intel Core i5-14600K", 2097},
	{"Intel Core i5-13600K", 1950},
	{"Intel Core i5-12600K", 1850},
	{"Intel Core i5-12400", 1700},

	// Intel Core i3
	{"Intel Core i3-12100", 1500},
	{"Intel Core i3-10100", 1100},

	// AMD Ryzen 9
	{"AMD Ryzen 9 9950X3D", 2242},
	{"AMD Ryzen 9 9950X", 2243},
	{"AMD Ryzen 9 9900X3D", 2190},
	{"AMD Ryzen 9 9900X", 2231},
	{"AMD Ryzen 9 7950X3D", 2053},
	{"AMD Ryzen 9 7950X", 2009},

	// AMD Ryzen 7
	{"AMD Ryzen 7 9700X", 2206},
	{"AMD Ryzen 7 7700X", 1950},

	// AMD Ryzen 5
	{"AMD Ryzen 5 9600X", 2163},
	{"AMD Ryzen 5 7600X", 1900},
	{"AMD Ryzen 5 5600X", 1600},
	{"AMD Ryzen 5 3600", 1200},

	// AMD Ryzen 3
	{"AMD Ryzen 3 3300X", 1200},
}

// GPUScoreTable holds 3DMark Time Spy graphics scores, same ordering rule as
// CPUScoreTable.
var GPUScoreTable = []ScoreRule{
	// NVIDIA RTX 50
	{"RTX 5090", 55000},

	// NVIDIA RTX 40
	{"RTX 4090", 35000},
	{"RTX 4080 Super", 28500},
	{"RTX 4080", 28000},
	{"RTX 4070 Ti Super", 23500},
	{"RTX 4070 Ti", 22000},
	{"RTX 4070 Super", 19500},
	{"RTX 4070", 18000},
	{"RTX 4060 Ti 16GB", 14500},
	{"RTX 4060 Ti", 14000},
	{"RTX 4060", 11000},

	// NVIDIA RTX 30
	{"RTX 3090 Ti", 19500},
	{"RTX 3090", 19000},
	{"RTX 3080 Ti", 18000},
	{"RTX 3080", 17000},
	{"RTX 3070 Ti", 14000},
	{"RTX 3070", 13000},
	{"RTX 3060 Ti", 11000},
	{"RTX 3060", 8500},
	{"RTX 3050", 6000},

	// NVIDIA GTX
	{"GTX 1660 Ti", 6000},
	{"GTX 1660 Super", 5800},
	{"GTX 1660", 5500},
	{"GTX 1650 Super", 4200},
	{"GTX 1650", 3500},
	{"GTX 1050 Ti", 3000},
	{"GTX 1050", 2500},

	// AMD RX 7000
	{"RX 7900 XTX", 24000},
	{"RX 7900 XT", 20000},
	{"RX 7800 XT", 16000},
	{"RX 7700 XT", 13000},
	{"RX 7600", 10000},

	// AMD RX 6000
	{"RX 6950 XT", 16500},
	{"RX 6900 XT", 16000},
	{"RX 6800 XT", 15000},
	{"RX 6800", 13500},
	{"RX 6750 XT", 12500},
	{"RX 6700 XT", 12000},
	{"RX 6650 XT", 10500},
	{"RX 6600 XT", 10000},
	{"RX 6600", 8000},
	{"RX 6500 XT", 5500},

	// AMD RX 5000 and older
	{"RX 5700 XT", 9000},
	{"RX 5700", 8000},
	{"RX 580", 4000},
	{"RX 570", 3500},
	{"RX 560", 2500},
}

// CPUKeywordRules brackets processors by family name.
var CPUKeywordRules = []KeywordRule{
	{Keywords: []string{"I9", "RYZEN 9"}, Score: 35000},
	{Keywords: []string{"I7", "RYZEN 7"}, Score: 25000},
	{Keywords: []string{"I5", "RYZEN 5"}, Score: 18000},
	{Keywords: []string{"I3", "RYZEN 3"}, Score: 10000},
	{Keywords: []string{"PENTIUM", "CELERON", "ATOM"}, Score: 5000},
}

// GPUKeywordRules brackets adapters by series name.
var GPUKeywordRules = []KeywordRule{
	{Keywords: []string{"RTX 4090", "RTX 4080"}, Score: 30000},
	{Keywords: []string{"RTX 4070", "RTX 3080", "RX 7900"}, Score: 20000},
	{Keywords: []string{"RTX 4060", "RTX 3070", "RX 7700", "RX 6700"}, Score: 12000},
	{Keywords: []string{"RTX 3060", "GTX 1660", "RX 6600"}, Score: 8000},
	{Keywords: []string{"GTX 1650", "GTX 1050", "RX 580"}, Score: 4000},
	{Keywords: []string{"UHD", "IRIS", "VEGA"}, Score: 2000},
}

// EstimateScore scans table in order for the first model contained in name,
// then keywords, and finally returns fallback. It never fails.
func EstimateScore(name string, table []ScoreRule, keywords []KeywordRule, fallback int) int {
	upper := strings.ToUpper(name)

	for _, rule := range table {
		if strings.Contains(upper, strings.ToUpper(rule.Model)) {
			return rule.Score
		}
	}

	for _, rule := range keywords {
		for _, kw := range rule.Keywords {
			if strings.Contains(upper, kw) {
				return rule.Score
			}
		}
	}

	return fallback
}

// EstimateCPUScore scores a canonical processor name.
func EstimateCPUScore(name string) int {
	return EstimateScore(name, CPUScoreTable, CPUKeywordRules, DefaultCPUScore)
}

// EstimateGPUScore scores a canonical adapter name.
func EstimateGPUScore(name string) int {
	return EstimateScore(name, GPUScoreTable, GPUKeywordRules, DefaultGPUScore)
}
