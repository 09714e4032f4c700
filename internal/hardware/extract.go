package hardware

import (
	"regexp"
	"strings"
)

// modelRule rewrites a cleaned device name into its canonical form when the
// pattern matches. Rules are evaluated in slice order; the first match wins.
type modelRule struct {
	pattern *regexp.Regexp
	format  func(match []string) string
}

func coreRule(family string) modelRule {
	return modelRule{
		pattern: regexp.MustCompile(`(?i)\bCORE\s+` + family + `[\-\s]*(\d+\w*)`),
		format: func(m []string) string {
			return "Intel Core " + strings.ToLower(family) + "-" + strings.ToUpper(m[1])
		},
	}
}

func bareCoreRule(family string) modelRule {
	return modelRule{
		pattern: regexp.MustCompile(`(?i)\b` + family + `[\-\s]*(\d+\w*)`),
		format: func(m []string) string {
			return "Intel Core " + strings.ToLower(family) + "-" + strings.ToUpper(m[1])
		},
	}
}

func namedRule(vendor, family, expr string) modelRule {
	return modelRule{
		pattern: regexp.MustCompile(`(?i)\b` + expr),
		format: func(m []string) string {
			return vendor + " " + family + " " + m[1]
		},
	}
}

func ryzenRule(series string) modelRule {
	return modelRule{
		pattern: regexp.MustCompile(`(?i)\bRYZEN\s+` + series + `\s+(?:PRO\s+)?(\d+\w*)`),
		format: func(m []string) string {
			return "AMD Ryzen " + series + " " + strings.ToUpper(m[1])
		},
	}
}

// cpuModelRules holds Intel families before AMD, most specific first.
var cpuModelRules = []modelRule{
	coreRule("I9"),
	coreRule("I7"),
	coreRule("I5"),
	coreRule("I3"),
	bareCoreRule("I9"),
	bareCoreRule("I7"),
	bareCoreRule("I5"),
	bareCoreRule("I3"),
	namedRule("Intel", "Pentium", `PENTIUM\s+(?:CPU\s+)?(\w+)`),
	namedRule("Intel", "Celeron", `CELERON\s+(?:CPU\s+)?(\w+)`),
	namedRule("Intel", "Atom", `ATOM\s+(?:CPU\s+)?(\w+)`),

	ryzenRule("9"),
	ryzenRule("7"),
	ryzenRule("5"),
	ryzenRule("3"),
	{
		pattern: regexp.MustCompile(`(?i)\bRYZEN\s+(\w+)\s+(\d+\w*)`),
		format: func(m []string) string {
			return "AMD Ryzen " + m[1] + " " + strings.ToUpper(m[2])
		},
	},
	namedRule("AMD", "Athlon", `ATHLON\s+(\w+)`),
	{
		pattern: regexp.MustCompile(`(?i)\bFX[\-\s]*(\d+\w*)`),
		format: func(m []string) string {
			return "AMD FX-" + strings.ToUpper(m[1])
		},
	},
}

// familyFallback maps a family keyword to the placeholder used when the
// vendor is recognised but no model number could be extracted.
type familyFallback struct {
	keyword string
	name    string
}

var intelFallbacks = []familyFallback{
	{"I9", "Intel Core i9 (unknown model)"},
	{"I7", "Intel Core i7 (unknown model)"},
	{"I5", "Intel Core i5 (unknown model)"},
	{"I3", "Intel Core i3 (unknown model)"},
	{"PENTIUM", "Intel Pentium"},
	{"CELERON", "Intel Celeron"},
}

var amdFallbacks = []familyFallback{
	{"RYZEN 9", "AMD Ryzen 9 (unknown model)"},
	{"RYZEN 7", "AMD Ryzen 7 (unknown model)"},
	{"RYZEN 5", "AMD Ryzen 5 (unknown model)"},
	{"RYZEN 3", "AMD Ryzen 3 (unknown model)"},
	{"RYZEN", "AMD Ryzen (unknown model)"},
	{"ATHLON", "AMD Athlon"},
	{"FX", "AMD FX"},
}

var (
	trademarkPattern  = regexp.MustCompile(`(?i)\((R|TM|C)\)|®|™`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	pciRevPattern     = regexp.MustCompile(`(?i)\s*\(rev\s+[0-9a-f]+\)\s*$`)
	bracketPattern    = regexp.MustCompile(`\[([^\]]+)\]`)
)

// cleanName strips trademark marks and collapses whitespace.
func cleanName(name string) string {
	name = trademarkPattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(name, " "))
}

// ExtractCPUModel normalises a free-form processor name such as
// "Intel(R) Core(TM) i7-13700K CPU" into "Intel Core i7-13700K". Names that
// match no rule and carry no known vendor keyword are returned unchanged.
func ExtractCPUModel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return UnknownCPU
	}
	if raw == UnknownCPU {
		return raw
	}

	cleaned := cleanName(raw)
	for _, rule := range cpuModelRules {
		if m := rule.pattern.FindStringSubmatch(cleaned); m != nil {
			return rule.format(m)
		}
	}

	upper := strings.ToUpper(cleaned)
	switch {
	case strings.Contains(upper, "INTEL"):
		return fallbackName(upper, intelFallbacks, "Intel processor")
	case strings.Contains(upper, "AMD"):
		return fallbackName(upper, amdFallbacks, "AMD processor")
	}

	return raw
}

func fallbackName(upper string, fallbacks []familyFallback, vendorOnly string) string {
	for _, f := range fallbacks {
		if strings.Contains(upper, f.keyword) {
			return f.name
		}
	}
	return vendorOnly
}

// NormalizeGPUName tidies adapter names reported by the probes. PCI listings
// such as "NVIDIA Corporation GA104 [GeForce RTX 3070 Ti] (rev a1)" are
// reduced to vendor plus the marketing name in the last bracket.
func NormalizeGPUName(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return UnknownGPU
	}
	if raw == UnknownGPU {
		return raw
	}

	name := pciRevPattern.ReplaceAllString(cleanName(raw), "")

	brackets := bracketPattern.FindAllStringSubmatch(name, -1)
	if len(brackets) == 0 {
		return name
	}
	model := strings.TrimSpace(brackets[len(brackets)-1][1])

	vendor := DetectGPUVendor(name)
	if vendor == VendorUnknown || strings.HasPrefix(strings.ToUpper(model), strings.ToUpper(string(vendor))) {
		return model
	}
	return string(vendor) + " " + model
}

var (
	nvidiaGPUPattern = regexp.MustCompile(`(?i)\b(NVIDIA|GEFORCE|QUADRO|TESLA|RTX|GTX)\b`)
	amdGPUPattern    = regexp.MustCompile(`(?i)\b(AMD|ATI|RADEON|RX)\b`)
	intelGPUPattern  = regexp.MustCompile(`(?i)\b(INTEL|UHD|IRIS|ARC)\b`)
)

// DetectCPUVendor classifies a processor name.
func DetectCPUVendor(name string) Vendor {
	upper := strings.ToUpper(name)
	switch {
	case strings.Contains(upper, "INTEL"):
		return VendorIntel
	case strings.Contains(upper, "AMD"), strings.Contains(upper, "RYZEN"), strings.Contains(upper, "ATHLON"):
		return VendorAMD
	default:
		return VendorUnknown
	}
}

// DetectGPUVendor classifies a display adapter name.
func DetectGPUVendor(name string) Vendor {
	switch {
	case nvidiaGPUPattern.MatchString(name):
		return VendorNVIDIA
	case amdGPUPattern.MatchString(name):
		return VendorAMD
	case intelGPUPattern.MatchString(name):
		return VendorIntel
	default:
		return VendorUnknown
	}
}

// IdentifyCPU builds the identity for a raw processor name. cores and threads
// are omitted from the identity when not positive.
func IdentifyCPU(raw string, cores, threads int) DeviceIdentity {
	canonical := ExtractCPUModel(raw)
	if strings.TrimSpace(raw) == "" {
		raw = UnknownCPU
	}
	id := DeviceIdentity{
		RawName:       raw,
		CanonicalName: canonical,
		Vendor:        DetectCPUVendor(canonical),
	}
	if cores > 0 {
		id.CoreCount = &cores
	}
	if threads > 0 {
		id.ThreadCount = &threads
	}
	return id
}

// IdentifyGPU builds the identity for a raw adapter name.
func IdentifyGPU(raw string) DeviceIdentity {
	canonical := NormalizeGPUName(raw)
	if strings.TrimSpace(raw) == "" {
		raw = UnknownGPU
	}
	return DeviceIdentity{
		RawName:       raw,
		CanonicalName: canonical,
		Vendor:        DetectGPUVendor(canonical),
	}
}
