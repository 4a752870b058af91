package ai

// csum marks components whose final digit is a GS1 mod-10 check digit.
var csum = []LintID{LintCheckDigit}

// registry is the full Application Identifier table from the GS1 General
// Specifications. Entries are plain data: identifier, predefined-length flag
// (false means the value is terminated by FNC1), component list and the GS1
// data title. Component rows read as (character set, min, max, linters).
//
// The table is never mutated after initialisation.
var registry = []Definition{
	// identification keys
	{"00", false, []Component{{CSetNumeric, 18, 18, csum}}, "SSCC"},
	{"01", false, []Component{{CSetNumeric, 14, 14, csum}}, "GTIN"},
	{"02", false, []Component{{CSetNumeric, 14, 14, csum}}, "CONTENT"},
	{"10", true, []Component{{CSet82, 1, 20, nil}}, "BATCH/LOT"},
	{"11", false, []Component{{CSetNumeric, 6, 6, nil}}, "PROD DATE"},
	{"12", false, []Component{{CSetNumeric, 6, 6, nil}}, "DUE DATE"},
	{"13", false, []Component{{CSetNumeric, 6, 6, nil}}, "PACK DATE"},
	{"15", false, []Component{{CSetNumeric, 6, 6, nil}}, "BEST BEFORE or BEST BY"},
	{"16", false, []Component{{CSetNumeric, 6, 6, nil}}, "SELL BY"},
	{"17", false, []Component{{CSetNumeric, 6, 6, nil}}, "USE BY OR EXPIRY"},
	{"20", false, []Component{{CSetNumeric, 2, 2, nil}}, "VARIANT"},
	{"21", true, []Component{{CSet82, 1, 20, nil}}, "SERIAL"},
	{"22", true, []Component{{CSet82, 1, 20, nil}}, "CPV"},
	{"235", true, []Component{{CSet82, 1, 28, nil}}, "TPX"},
	{"240", true, []Component{{CSet82, 1, 30, nil}}, "ADDITIONAL ID"},
	{"241", true, []Component{{CSet82, 1, 30, nil}}, "CUST. PART No."},
	{"242", true, []Component{{CSetNumeric, 1, 6, nil}}, "MTO VARIANT"},
	{"243", true, []Component{{CSet82, 1, 20, nil}}, "PCN"},
	{"250", true, []Component{{CSet82, 1, 30, nil}}, "SECONDARY SERIAL"},
	{"251", true, []Component{{CSet82, 1, 30, nil}}, "REF. TO SOURCE"},
	{"253", true, []Component{{CSetNumeric, 13, 13, csum}, {CSet82, 0, 17, nil}}, "GDTI"},
	{"254", true, []Component{{CSet82, 1, 20, nil}}, "GLN EXTENSION COMPONENT"},
	{"255", true, []Component{{CSetNumeric, 13, 13, csum}, {CSetNumeric, 0, 12, nil}}, "GCN"},
	{"30", true, []Component{{CSetNumeric, 1, 8, nil}}, "VAR. COUNT"},

	// trade and logistic measures; the fourth digit gives the implied
	// decimal point position
	{"3100", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (kg)"},
	{"3101", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (kg)"},
	{"3102", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (kg)"},
	{"3103", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (kg)"},
	{"3104", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (kg)"},
	{"3105", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (kg)"},
	{"3110", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m)"},
	{"3111", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m)"},
	{"3112", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m)"},
	{"3113", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m)"},
	{"3114", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m)"},
	{"3115", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m)"},
	{"3120", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m)"},
	{"3121", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m)"},
	{"3122", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m)"},
	{"3123", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m)"},
	{"3124", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m)"},
	{"3125", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m)"},
	{"3130", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m)"},
	{"3131", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m)"},
	{"3132", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m)"},
	{"3133", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m)"},
	{"3134", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m)"},
	{"3135", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m)"},
	{"3140", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2)"},
	{"3141", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2)"},
	{"3142", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2)"},
	{"3143", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2)"},
	{"3144", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2)"},
	{"3145", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2)"},
	{"3150", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (l)"},
	{"3151", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (l)"},
	{"3152", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (l)"},
	{"3153", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (l)"},
	{"3154", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (l)"},
	{"3155", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (l)"},
	{"3160", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (m3)"},
	{"3161", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (m3)"},
	{"3162", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (m3)"},
	{"3163", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (m3)"},
	{"3164", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (m3)"},
	{"3165", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (m3)"},
	{"3200", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (lb)"},
	{"3201", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (lb)"},
	{"3202", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (lb)"},
	{"3203", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (lb)"},
	{"3204", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (lb)"},
	{"3205", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (lb)"},
	{"3210", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i)"},
	{"3211", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i)"},
	{"3212", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i)"},
	{"3213", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i)"},
	{"3214", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i)"},
	{"3215", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i)"},
	{"3220", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f)"},
	{"3221", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f)"},
	{"3222", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f)"},
	{"3223", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f)"},
	{"3224", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f)"},
	{"3225", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f)"},
	{"3230", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y)"},
	{"3231", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y)"},
	{"3232", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y)"},
	{"3233", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y)"},
	{"3234", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y)"},
	{"3235", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y)"},
	{"3240", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i)"},
	{"3241", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i)"},
	{"3242", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i)"},
	{"3243", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i)"},
	{"3244", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i)"},
	{"3245", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i)"},
	{"3250", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f)"},
	{"3251", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f)"},
	{"3252", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f)"},
	{"3253", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f)"},
	{"3254", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f)"},
	{"3255", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f)"},
	{"3260", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y)"},
	{"3261", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y)"},
	{"3262", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y)"},
	{"3263", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y)"},
	{"3264", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y)"},
	{"3265", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y)"},
	{"3270", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i)"},
	{"3271", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i)"},
	{"3272", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i)"},
	{"3273", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i)"},
	{"3274", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i)"},
	{"3275", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i)"},
	{"3280", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f)"},
	{"3281", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f)"},
	{"3282", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f)"},
	{"3283", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f)"},
	{"3284", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f)"},
	{"3285", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f)"},
	{"3290", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y)"},
	{"3291", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y)"},
	{"3292", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y)"},
	{"3293", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y)"},
	{"3294", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y)"},
	{"3295", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y)"},
	{"3300", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (kg)"},
	{"3301", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (kg)"},
	{"3302", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (kg)"},
	{"3303", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (kg)"},
	{"3304", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (kg)"},
	{"3305", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (kg)"},
	{"3310", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m), log"},
	{"3311", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m), log"},
	{"3312", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m), log"},
	{"3313", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m), log"},
	{"3314", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m), log"},
	{"3315", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (m), log"},
	{"3320", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m), log"},
	{"3321", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m), log"},
	{"3322", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m), log"},
	{"3323", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m), log"},
	{"3324", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m), log"},
	{"3325", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (m), log"},
	{"3330", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m), log"},
	{"3331", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m), log"},
	{"3332", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m), log"},
	{"3333", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m), log"},
	{"3334", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m), log"},
	{"3335", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (m), log"},
	{"3340", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2), log"},
	{"3341", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2), log"},
	{"3342", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2), log"},
	{"3343", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2), log"},
	{"3344", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2), log"},
	{"3345", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (m2), log"},
	{"3350", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (l)"},
	{"3351", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (l)"},
	{"3352", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (l)"},
	{"3353", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (l)"},
	{"3354", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (l)"},
	{"3355", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (l)"},
	{"3360", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (m3)"},
	{"3361", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (m3)"},
	{"3362", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (m3)"},
	{"3363", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (m3)"},
	{"3364", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (m3)"},
	{"3365", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (m3)"},
	{"3370", false, []Component{{CSetNumeric, 6, 6, nil}}, "KG PER m2"},
	{"3371", false, []Component{{CSetNumeric, 6, 6, nil}}, "KG PER m2"},
	{"3372", false, []Component{{CSetNumeric, 6, 6, nil}}, "KG PER m2"},
	{"3373", false, []Component{{CSetNumeric, 6, 6, nil}}, "KG PER m2"},
	{"3374", false, []Component{{CSetNumeric, 6, 6, nil}}, "KG PER m2"},
	{"3375", false, []Component{{CSetNumeric, 6, 6, nil}}, "KG PER m2"},
	{"3400", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (lb)"},
	{"3401", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (lb)"},
	{"3402", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (lb)"},
	{"3403", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (lb)"},
	{"3404", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (lb)"},
	{"3405", false, []Component{{CSetNumeric, 6, 6, nil}}, "GROSS WEIGHT (lb)"},
	{"3410", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i), log"},
	{"3411", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i), log"},
	{"3412", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i), log"},
	{"3413", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i), log"},
	{"3414", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i), log"},
	{"3415", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (i), log"},
	{"3420", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f), log"},
	{"3421", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f), log"},
	{"3422", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f), log"},
	{"3423", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f), log"},
	{"3424", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f), log"},
	{"3425", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (f), log"},
	{"3430", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y), log"},
	{"3431", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y), log"},
	{"3432", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y), log"},
	{"3433", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y), log"},
	{"3434", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y), log"},
	{"3435", false, []Component{{CSetNumeric, 6, 6, nil}}, "LENGTH (y), log"},
	{"3440", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i), log"},
	{"3441", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i), log"},
	{"3442", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i), log"},
	{"3443", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i), log"},
	{"3444", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i), log"},
	{"3445", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (i), log"},
	{"3450", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f), log"},
	{"3451", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f), log"},
	{"3452", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f), log"},
	{"3453", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f), log"},
	{"3454", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f), log"},
	{"3455", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (f), log"},
	{"3460", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y), log"},
	{"3461", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y), log"},
	{"3462", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y), log"},
	{"3463", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y), log"},
	{"3464", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y), log"},
	{"3465", false, []Component{{CSetNumeric, 6, 6, nil}}, "WIDTH (y), log"},
	{"3470", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i), log"},
	{"3471", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i), log"},
	{"3472", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i), log"},
	{"3473", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i), log"},
	{"3474", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i), log"},
	{"3475", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (i), log"},
	{"3480", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f), log"},
	{"3481", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f), log"},
	{"3482", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f), log"},
	{"3483", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f), log"},
	{"3484", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f), log"},
	{"3485", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (f), log"},
	{"3490", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y), log"},
	{"3491", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y), log"},
	{"3492", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y), log"},
	{"3493", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y), log"},
	{"3494", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y), log"},
	{"3495", false, []Component{{CSetNumeric, 6, 6, nil}}, "HEIGHT (y), log"},
	{"3500", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2)"},
	{"3501", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2)"},
	{"3502", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2)"},
	{"3503", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2)"},
	{"3504", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2)"},
	{"3505", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2)"},
	{"3510", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2)"},
	{"3511", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2)"},
	{"3512", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2)"},
	{"3513", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2)"},
	{"3514", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2)"},
	{"3515", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2)"},
	{"3520", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2)"},
	{"3521", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2)"},
	{"3522", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2)"},
	{"3523", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2)"},
	{"3524", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2)"},
	{"3525", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2)"},
	{"3530", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2), log"},
	{"3531", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2), log"},
	{"3532", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2), log"},
	{"3533", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2), log"},
	{"3534", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2), log"},
	{"3535", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (i2), log"},
	{"3540", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2), log"},
	{"3541", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2), log"},
	{"3542", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2), log"},
	{"3543", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2), log"},
	{"3544", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2), log"},
	{"3545", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (f2), log"},
	{"3550", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2), log"},
	{"3551", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2), log"},
	{"3552", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2), log"},
	{"3553", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2), log"},
	{"3554", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2), log"},
	{"3555", false, []Component{{CSetNumeric, 6, 6, nil}}, "AREA (y2), log"},
	{"3560", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (t)"},
	{"3561", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (t)"},
	{"3562", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (t)"},
	{"3563", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (t)"},
	{"3564", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (t)"},
	{"3565", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET WEIGHT (t)"},
	{"3570", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (oz)"},
	{"3571", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (oz)"},
	{"3572", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (oz)"},
	{"3573", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (oz)"},
	{"3574", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (oz)"},
	{"3575", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (oz)"},
	{"3600", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (q)"},
	{"3601", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (q)"},
	{"3602", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (q)"},
	{"3603", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (q)"},
	{"3604", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (q)"},
	{"3605", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (q)"},
	{"3610", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (g)"},
	{"3611", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (g)"},
	{"3612", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (g)"},
	{"3613", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (g)"},
	{"3614", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (g)"},
	{"3615", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (g)"},
	{"3620", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (q)"},
	{"3621", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (q)"},
	{"3622", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (q)"},
	{"3623", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (q)"},
	{"3624", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (q)"},
	{"3625", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (q)"},
	{"3630", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (g)"},
	{"3631", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (g)"},
	{"3632", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (g)"},
	{"3633", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (g)"},
	{"3634", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (g)"},
	{"3635", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (g)"},
	{"3640", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (i3)"},
	{"3641", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (i3)"},
	{"3642", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (i3)"},
	{"3643", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (i3)"},
	{"3644", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (i3)"},
	{"3645", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (i3)"},
	{"3650", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (f3)"},
	{"3651", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (f3)"},
	{"3652", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (f3)"},
	{"3653", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (f3)"},
	{"3654", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (f3)"},
	{"3655", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (f3)"},
	{"3660", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (y3)"},
	{"3661", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (y3)"},
	{"3662", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (y3)"},
	{"3663", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (y3)"},
	{"3664", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (y3)"},
	{"3665", false, []Component{{CSetNumeric, 6, 6, nil}}, "NET VOLUME (y3)"},
	{"3670", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (i3)"},
	{"3671", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (i3)"},
	{"3672", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (i3)"},
	{"3673", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (i3)"},
	{"3674", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (i3)"},
	{"3675", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (i3)"},
	{"3680", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (f3)"},
	{"3681", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (f3)"},
	{"3682", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (f3)"},
	{"3683", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (f3)"},
	{"3684", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (f3)"},
	{"3685", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (f3)"},
	{"3690", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (y3)"},
	{"3691", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (y3)"},
	{"3692", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (y3)"},
	{"3693", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (y3)"},
	{"3694", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (y3)"},
	{"3695", false, []Component{{CSetNumeric, 6, 6, nil}}, "LOGISTIC VOLUME (y3)"},
	{"37", true, []Component{{CSetNumeric, 1, 8, nil}}, "COUNT"},

	// amounts and prices; the fourth digit gives the implied decimal
	// point position
	{"3900", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3901", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3902", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3903", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3904", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3905", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3906", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3907", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3908", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3909", true, []Component{{CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3910", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3911", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3912", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3913", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3914", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3915", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3916", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3917", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3918", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3919", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "AMOUNT"},
	{"3920", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3921", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3922", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3923", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3924", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3925", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3926", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3927", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3928", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3929", true, []Component{{CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3930", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3931", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3932", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3933", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3934", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3935", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3936", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3937", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3938", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3939", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 1, 15, nil}}, "PRICE"},
	{"3940", true, []Component{{CSetNumeric, 4, 4, nil}}, "PRCNT OFF"},
	{"3941", true, []Component{{CSetNumeric, 4, 4, nil}}, "PRCNT OFF"},
	{"3942", true, []Component{{CSetNumeric, 4, 4, nil}}, "PRCNT OFF"},
	{"3943", true, []Component{{CSetNumeric, 4, 4, nil}}, "PRCNT OFF"},
	{"3950", true, []Component{{CSetNumeric, 6, 6, nil}}, "PRICE/UoM"},
	{"3951", true, []Component{{CSetNumeric, 6, 6, nil}}, "PRICE/UoM"},
	{"3952", true, []Component{{CSetNumeric, 6, 6, nil}}, "PRICE/UoM"},
	{"3953", true, []Component{{CSetNumeric, 6, 6, nil}}, "PRICE/UoM"},
	{"3954", true, []Component{{CSetNumeric, 6, 6, nil}}, "PRICE/UoM"},
	{"3955", true, []Component{{CSetNumeric, 6, 6, nil}}, "PRICE/UoM"},

	// logistics and parties
	{"400", true, []Component{{CSet82, 1, 30, nil}}, "ORDER NUMBER"},
	{"401", true, []Component{{CSet82, 1, 30, nil}}, "GINC"},
	{"402", true, []Component{{CSetNumeric, 17, 17, csum}}, "GSIN"},
	{"403", true, []Component{{CSet82, 1, 30, nil}}, "ROUTE"},
	{"410", false, []Component{{CSetNumeric, 13, 13, csum}}, "SHIP TO LOC"},
	{"411", false, []Component{{CSetNumeric, 13, 13, csum}}, "BILL TO"},
	{"412", false, []Component{{CSetNumeric, 13, 13, csum}}, "PURCHASE FROM"},
	{"413", false, []Component{{CSetNumeric, 13, 13, csum}}, "SHIP FOR LOC"},
	{"414", false, []Component{{CSetNumeric, 13, 13, csum}}, "LOC No"},
	{"415", false, []Component{{CSetNumeric, 13, 13, csum}}, "PAY TO"},
	{"416", false, []Component{{CSetNumeric, 13, 13, csum}}, "PROD/SERV LOC"},
	{"417", false, []Component{{CSetNumeric, 13, 13, csum}}, "PARTY"},
	{"420", true, []Component{{CSet82, 1, 20, nil}}, "SHIP TO POST"},
	{"421", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 9, nil}}, "SHIP TO POST"},
	{"422", true, []Component{{CSetNumeric, 3, 3, nil}}, "ORIGIN"},
	{"423", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 0, 12, nil}}, "COUNTRY - INITIAL PROCESS"},
	{"424", true, []Component{{CSetNumeric, 3, 3, nil}}, "COUNTRY - PROCESS"},
	{"425", true, []Component{{CSetNumeric, 3, 3, nil}, {CSetNumeric, 0, 12, nil}}, "COUNTRY - DISASSEMBLY"},
	{"426", true, []Component{{CSetNumeric, 3, 3, nil}}, "COUNTRY - FULL PROCESS"},
	{"427", true, []Component{{CSet82, 1, 3, nil}}, "ORIGIN SUBDIVISION"},
	{"4300", true, []Component{{CSet82, 1, 35, nil}}, "SHIP TO COMP"},
	{"4301", true, []Component{{CSet82, 1, 35, nil}}, "SHIP TO NAME"},
	{"4302", true, []Component{{CSet82, 1, 70, nil}}, "SHIP TO ADD1"},
	{"4303", true, []Component{{CSet82, 1, 70, nil}}, "SHIP TO ADD2"},
	{"4304", true, []Component{{CSet82, 1, 70, nil}}, "SHIP TO SUB"},
	{"4305", true, []Component{{CSet82, 1, 70, nil}}, "SHIP TO LOC"},
	{"4306", true, []Component{{CSet82, 1, 70, nil}}, "SHIP TO REG"},
	{"4307", true, []Component{{CSet82, 2, 2, nil}}, "SHIP TO COUNTRY"},
	{"4308", true, []Component{{CSet82, 1, 30, nil}}, "SHIP TO PHONE"},
	{"4309", true, []Component{{CSetNumeric, 20, 20, nil}}, "SHIP TO GEO"},
	{"4310", true, []Component{{CSet82, 1, 35, nil}}, "RTN TO COMP"},
	{"4311", true, []Component{{CSet82, 1, 35, nil}}, "RTN TO NAME"},
	{"4312", true, []Component{{CSet82, 1, 70, nil}}, "RTN TO ADD1"},
	{"4313", true, []Component{{CSet82, 1, 70, nil}}, "RTN TO ADD2"},
	{"4314", true, []Component{{CSet82, 1, 70, nil}}, "RTN TO SUB"},
	{"4315", true, []Component{{CSet82, 1, 70, nil}}, "RTN TO LOC"},
	{"4316", true, []Component{{CSet82, 1, 70, nil}}, "RTN TO REG"},
	{"4317", true, []Component{{CSet82, 2, 2, nil}}, "RTN TO COUNTRY"},
	{"4318", true, []Component{{CSet82, 1, 20, nil}}, "RTN TO POST"},
	{"4319", true, []Component{{CSet82, 1, 30, nil}}, "RTN TO PHONE"},
	{"4320", true, []Component{{CSet82, 1, 35, nil}}, "SRV DESCRIPTION"},
	{"4321", true, []Component{{CSetNumeric, 1, 1, nil}}, "DANGEROUS GOODS"},
	{"4322", true, []Component{{CSetNumeric, 1, 1, nil}}, "AUTH LEAVE"},
	{"4323", true, []Component{{CSetNumeric, 1, 1, nil}}, "SIG REQUIRED"},
	{"4324", true, []Component{{CSetNumeric, 10, 10, nil}}, "NBEF DEL DT"},
	{"4325", true, []Component{{CSetNumeric, 10, 10, nil}}, "NAFT DEL DT"},
	{"4326", true, []Component{{CSetNumeric, 6, 6, nil}}, "REL DATE"},

	// industry sector attributes
	{"7001", true, []Component{{CSetNumeric, 13, 13, nil}}, "NSN"},
	{"7002", true, []Component{{CSet82, 1, 30, nil}}, "MEAT CUT"},
	{"7003", true, []Component{{CSetNumeric, 10, 10, nil}}, "EXPIRY TIME"},
	{"7004", true, []Component{{CSetNumeric, 1, 4, nil}}, "ACTIVE POTENCY"},
	{"7005", true, []Component{{CSet82, 1, 12, nil}}, "CATCH AREA"},
	{"7006", true, []Component{{CSetNumeric, 6, 6, nil}}, "FIRST FREEZE DATE"},
	{"7007", true, []Component{{CSetNumeric, 6, 6, nil}, {CSetNumeric, 0, 6, nil}}, "HARVEST DATE"},
	{"7008", true, []Component{{CSet82, 1, 3, nil}}, "AQUATIC SPECIES"},
	{"7009", true, []Component{{CSet82, 1, 10, nil}}, "FISHING GEAR TYPE"},
	{"7010", true, []Component{{CSet82, 1, 2, nil}}, "PROD METHOD"},
	{"7020", true, []Component{{CSet82, 1, 20, nil}}, "REFURB LOT"},
	{"7021", true, []Component{{CSet82, 1, 20, nil}}, "FUNC STAT"},
	{"7022", true, []Component{{CSet82, 1, 20, nil}}, "REV STAT"},
	{"7023", true, []Component{{CSet82, 1, 30, nil}}, "GIAI - ASSEMBLY"},
	{"7030", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 0"},
	{"7031", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 1"},
	{"7032", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 2"},
	{"7033", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 3"},
	{"7034", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 4"},
	{"7035", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 5"},
	{"7036", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 6"},
	{"7037", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 7"},
	{"7038", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 8"},
	{"7039", true, []Component{{CSetNumeric, 3, 3, nil}, {CSet82, 1, 27, nil}}, "PROCESSOR # 9"},
	{"7040", true, []Component{{CSetNumeric, 1, 1, nil}, {CSet82, 1, 1, nil}, {CSet82, 1, 1, nil}, {CSet82, 1, 1, nil}}, "UIC+EXT"},
	{"710", true, []Component{{CSet82, 1, 20, nil}}, "NHRN PZN"},
	{"711", true, []Component{{CSet82, 1, 20, nil}}, "NHRN CIP"},
	{"712", true, []Component{{CSet82, 1, 20, nil}}, "NHRN CN"},
	{"713", true, []Component{{CSet82, 1, 20, nil}}, "NHRN DRN"},
	{"714", true, []Component{{CSet82, 1, 20, nil}}, "NHRN AIM"},
	{"7230", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 0"},
	{"7231", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 1"},
	{"7232", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 2"},
	{"7233", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 3"},
	{"7234", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 4"},
	{"7235", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 5"},
	{"7236", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 6"},
	{"7237", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 7"},
	{"7238", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 8"},
	{"7239", true, []Component{{CSet82, 2, 2, nil}, {CSet82, 1, 28, nil}}, "CERT # 9"},
	{"7240", true, []Component{{CSet82, 1, 20, nil}}, "PROTOCOL"},

	// special identifiers
	{"8001", true, []Component{{CSetNumeric, 14, 14, nil}}, "DIMENSIONS"},
	{"8002", true, []Component{{CSet82, 1, 20, nil}}, "CMT No"},
	{"8003", true, []Component{{CSetNumeric, 1, 1, nil}, {CSetNumeric, 13, 13, csum}, {CSet82, 0, 16, nil}}, "GRAI"},
	{"8004", true, []Component{{CSet82, 1, 30, nil}}, "GIAI"},
	{"8005", true, []Component{{CSetNumeric, 6, 6, nil}}, "PRICE PER UNIT"},
	{"8006", true, []Component{{CSetNumeric, 14, 14, csum}, {CSetNumeric, 4, 4, nil}}, "ITIP"},
	{"8007", true, []Component{{CSet82, 1, 34, nil}}, "IBAN"},
	{"8008", true, []Component{{CSetNumeric, 8, 8, nil}, {CSetNumeric, 0, 4, nil}}, "PROD TIME"},
	{"8009", true, []Component{{CSet82, 1, 50, nil}}, "OPTSEN"},
	{"8010", true, []Component{{CSetC, 1, 30, nil}}, "CPID"},
	{"8011", true, []Component{{CSetNumeric, 1, 12, nil}}, "CPID SERIAL"},
	{"8012", true, []Component{{CSet82, 1, 20, nil}}, "VERSION"},
	{"8013", true, []Component{{CSet82, 1, 25, nil}}, "GMN"},
	{"8017", true, []Component{{CSetNumeric, 18, 18, csum}}, "GSRN - PROVIDER"},
	{"8018", true, []Component{{CSetNumeric, 18, 18, csum}}, "GSRN - RECIPIENT"},
	{"8019", true, []Component{{CSetNumeric, 1, 10, nil}}, "SRIN"},
	{"8020", true, []Component{{CSet82, 1, 25, nil}}, "REF No"},
	{"8026", true, []Component{{CSetNumeric, 14, 14, csum}, {CSetNumeric, 4, 4, nil}}, "ITIP CONTENT"},
	{"8110", true, []Component{{CSet82, 1, 70, nil}}, ""},
	{"8111", true, []Component{{CSetNumeric, 4, 4, nil}}, "POINTS"},
	{"8112", true, []Component{{CSet82, 1, 70, nil}}, ""},
	{"8200", true, []Component{{CSet82, 1, 70, nil}}, "PRODUCT URL"},

	// company internal information
	{"90", true, []Component{{CSet82, 1, 30, nil}}, "INTERNAL"},
	{"91", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"92", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"93", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"94", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"95", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"96", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"97", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"98", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
	{"99", true, []Component{{CSet82, 1, 90, nil}}, "INTERNAL"},
}

// fixedLengthPrefix holds the two-digit AI prefixes whose values have a
// predefined length, per figure 7.8.5-2 of the GS1 General Specifications.
// No FNC1 separator is emitted after the value of an AI with one of these
// prefixes.
var fixedLengthPrefix = map[string]bool{
	"00": true, "01": true, "02": true, "03": true, "04": true,
	"11": true, "12": true, "13": true, "14": true, "15": true,
	"16": true, "17": true, "18": true, "19": true, "20": true,
	"31": true, "32": true, "33": true, "34": true, "35": true,
	"36": true, "41": true,
}

// dlPrimaryKey holds the AIs that may root the path info of a GS1 Digital
// Link URI.
var dlPrimaryKey = map[string]bool{
	"00": true, "01": true, "253": true, "255": true, "401": true,
	"402": true, "414": true, "417": true, "8003": true, "8004": true,
	"8006": true, "8010": true, "8013": true, "8017": true, "8018": true,
}

// HasFixedLength reports whether the AI's two-digit prefix marks it as an AI
// of predefined length, which is never followed by an FNC1 separator.
func HasFixedLength(aiKey string) bool {
	return len(aiKey) >= 2 && fixedLengthPrefix[aiKey[:2]]
}

// IsDLPrimaryKey reports whether the AI may serve as the primary key of a
// GS1 Digital Link URI path.
func IsDLPrimaryKey(aiKey string) bool {
	return dlPrimaryKey[aiKey]
}

// Registry returns the full AI table. Callers must not modify the returned
// slice or anything reachable from it.
func Registry() []Definition {
	return registry
}
