package meta

import "strings"

// sonyModelNames maps Sony's internal ILCE designations to the marketing
// names photographers recognize.
var sonyModelNames = map[string]string{
	"ILCE-1":    "α1",
	"ILCE-9M3":  "α9 III",
	"ILCE-9M2":  "α9 II",
	"ILCE-7RM5": "α7R V",
	"ILCE-7RM4": "α7R IV",
	"ILCE-7RM3": "α7R III",
	"ILCE-7SM3": "α7S III",
	"ILCE-7SM2": "α7S II",
	"ILCE-7M5":  "α7 V",
	"ILCE-7M4":  "α7 IV",
	"ILCE-7M3":  "α7 III",
	"ILCE-7C":   "α7C",
	"ILCE-7CM2": "α7C II",
	"ILCE-7CR":  "α7CR",
	"ILCE-6700": "α6700",
	"ZV-E1":     "ZV-E1",
}

// CleanModelName turns a raw EXIF (Make, Model) pair into the short
// display name: "NIKON Z 8" becomes "Z 8", "Canon EOS R5" becomes
// "EOS R5", Sony internal names map to their marketing names.
func CleanModelName(rawMake, rawModel string) string {
	makeClean := strings.ToUpper(rawMake)
	for _, noise := range corporateNoise {
		makeClean = strings.ReplaceAll(makeClean, noise, "")
	}
	makeClean = strings.TrimSpace(makeClean)
	modelUpper := strings.ToUpper(rawModel)

	if strings.Contains(makeClean, "SONY") || strings.HasPrefix(modelUpper, "ILCE") {
		if name, ok := sonyModelNames[modelUpper]; ok {
			return name
		}
		return strings.TrimSpace(strings.ReplaceAll(modelUpper, "ILCE-", "α"))
	}

	model := strings.TrimSpace(rawModel)
	if makeClean != "" {
		if idx := strings.Index(modelUpper, makeClean); idx >= 0 {
			model = strings.TrimSpace(rawModel[idx+len(makeClean):])
		}
	}

	// Some Nikon bodies repeat the brand in the model tag even though the
	// make tag reads "NIKON CORPORATION".
	if strings.HasPrefix(strings.ToUpper(model), "NIKON") {
		model = strings.TrimSpace(model[len("NIKON"):])
	}

	return model
}
