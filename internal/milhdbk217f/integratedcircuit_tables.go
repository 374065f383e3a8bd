package milhdbk217f

// icPartCountLambdaB is keyed by subcategory and technology (1 bipolar,
// 2 MOS) and indexed by complexity band then environment. Linear devices
// and the MOS-only memories do not vary by technology and use key 0.
var icPartCountLambdaB = map[int]map[int][][]float64{
	1: {0: {
		{0.0095, 0.024, 0.039, 0.034, 0.049, 0.057, 0.062, 0.12, 0.13, 0.076, 0.0095, 0.044, 0.096, 1.1},
		{0.017, 0.041, 0.065, 0.054, 0.078, 0.1, 0.11, 0.22, 0.24, 0.13, 0.017, 0.072, 0.15, 1.4},
		{0.033, 0.074, 0.11, 0.092, 0.13, 0.19, 0.19, 0.41, 0.44, 0.22, 0.033, 0.12, 0.26, 2.0},
		{0.05, 0.12, 0.18, 0.15, 0.21, 0.3, 0.3, 0.63, 0.67, 0.35, 0.05, 0.19, 0.41, 3.4},
	}},
	2: {
		1: {
			{0.0036, 0.012, 0.024, 0.024, 0.035, 0.025, 0.030, 0.032, 0.049, 0.047, 0.0036, 0.030, 0.069, 1.2},
			{0.006, 0.02, 0.038, 0.037, 0.055, 0.039, 0.048, 0.051, 0.077, 0.074, 0.006, 0.046, 0.11, 1.9},
			{0.011, 0.035, 0.066, 0.065, 0.097, 0.07, 0.085, 0.091, 0.14, 0.13, 0.011, 0.082, 0.19, 3.3},
			{0.033, 0.12, 0.22, 0.22, 0.33, 0.23, 0.28, 0.3, 0.46, 0.44, 0.033, 0.28, 0.65, 12.0},
			{0.052, 0.17, 0.33, 0.33, 0.48, 0.34, 0.42, 0.45, 0.68, 0.65, 0.052, 0.41, 0.95, 17.0},
			{0.075, 0.23, 0.44, 0.43, 0.63, 0.46, 0.56, 0.61, 0.9, 0.85, 0.075, 0.53, 1.2, 21.0},
		},
		2: {
			{0.0057, 0.015, 0.027, 0.027, 0.039, 0.029, 0.035, 0.039, 0.056, 0.052, 0.0057, 0.033, 0.074, 1.2},
			{0.01, 0.028, 0.045, 0.043, 0.062, 0.049, 0.057, 0.068, 0.092, 0.083, 0.01, 0.053, 0.12, 1.9},
			{0.019, 0.047, 0.08, 0.077, 0.11, 0.088, 0.1, 0.12, 0.17, 0.15, 0.019, 0.095, 0.21, 3.3},
			{0.049, 0.14, 0.25, 0.24, 0.36, 0.27, 0.32, 0.36, 0.51, 0.48, 0.049, 0.3, 0.69, 12.0},
			{0.084, 0.22, 0.39, 0.37, 0.54, 0.42, 0.49, 0.56, 0.79, 0.72, 0.084, 0.46, 1.0, 17.0},
			{0.13, 0.31, 0.53, 0.51, 0.73, 0.59, 0.69, 0.82, 1.1, 0.98, 0.13, 0.83, 1.4, 21.0},
		},
	},
	3: {
		1: {
			{0.0061, 0.016, 0.029, 0.027, 0.04, 0.032, 0.037, 0.044, 0.061, 0.054, 0.0061, 0.034, 0.076, 1.2},
			{0.011, 0.028, 0.048, 0.046, 0.065, 0.054, 0.063, 0.077, 0.1, 0.089, 0.011, 0.057, 0.12, 1.9},
			{0.022, 0.052, 0.087, 0.082, 0.12, 0.099, 0.11, 0.14, 0.19, 0.16, 0.022, 0.1, 0.22, 3.3},
		},
		2: {
			{0.0046, 0.018, 0.035, 0.035, 0.052, 0.035, 0.044, 0.044, 0.07, 0.07, 0.0046, 0.044, 0.1, 1.9},
			{0.0056, 0.021, 0.042, 0.042, 0.062, 0.042, 0.052, 0.053, 0.084, 0.083, 0.0056, 0.052, 0.12, 2.3},
			{0.0061, 0.022, 0.043, 0.042, 0.063, 0.043, 0.054, 0.055, 0.086, 0.084, 0.0081, 0.053, 0.13, 2.3},
			{0.0095, 0.033, 0.064, 0.063, 0.094, 0.065, 0.08, 0.083, 0.13, 0.13, 0.0095, 0.079, 0.19, 3.3},
		},
	},
	4: {
		1: {
			{0.028, 0.061, 0.098, 0.091, 0.13, 0.12, 0.13, 0.17, 0.22, 0.18, 0.028, 0.11, 0.24, 3.3},
			{0.052, 0.11, 0.18, 0.16, 0.23, 0.21, 0.24, 0.32, 0.39, 0.31, 0.052, 0.2, 0.41, 5.6},
			{0.11, 0.23, 0.36, 0.33, 0.47, 0.44, 0.49, 0.65, 0.81, 0.65, 0.11, 0.42, 0.86, 12.0},
		},
		2: {
			{0.048, 0.089, 0.13, 0.12, 0.16, 0.16, 0.17, 0.24, 0.28, 0.22, 0.048, 0.15, 0.28, 3.4},
			{0.093, 0.17, 0.24, 0.22, 0.29, 0.3, 0.32, 0.45, 0.52, 0.4, 0.093, 0.27, 0.5, 5.6},
			{0.19, 0.34, 0.49, 0.45, 0.6, 0.61, 0.66, 0.9, 1.1, 0.82, 0.19, 0.54, 1.0, 12.0},
		},
	},
	5: {
		1: {
			{0.01, 0.028, 0.05, 0.046, 0.067, 0.062, 0.07, 0.1, 0.13, 0.096, 0.01, 0.058, 0.13, 1.9},
			{0.017, 0.043, 0.071, 0.063, 0.091, 0.095, 0.11, 0.18, 0.21, 0.14, 0.017, 0.081, 0.18, 2.3},
			{0.028, 0.065, 0.1, 0.085, 0.12, 0.15, 0.18, 0.3, 0.33, 0.19, 0.028, 0.11, 0.23, 2.3},
			{0.053, 0.12, 0.18, 0.15, 0.21, 0.27, 0.29, 0.56, 0.61, 0.33, 0.053, 0.19, 0.39, 3.4},
		},
		2: {
			{0.0047, 0.018, 0.036, 0.035, 0.053, 0.037, 0.045, 0.048, 0.074, 0.071, 0.0047, 0.044, 0.11, 1.9},
			{0.0059, 0.022, 0.043, 0.042, 0.063, 0.045, 0.055, 0.06, 0.09, 0.086, 0.0059, 0.053, 0.13, 2.3},
			{0.0067, 0.023, 0.045, 0.044, 0.066, 0.048, 0.059, 0.068, 0.099, 0.089, 0.0067, 0.055, 0.13, 2.3},
			{0.011, 0.036, 0.068, 0.066, 0.098, 0.075, 0.09, 0.11, 0.15, 0.14, 0.011, 0.083, 0.2, 3.3},
		},
	},
	6: {
		0: {
			{0.0049, 0.018, 0.036, 0.036, 0.053, 0.037, 0.046, 0.049, 0.075, 0.072, 0.0048, 0.045, 0.11, 1.9},
			{0.0061, 0.022, 0.044, 0.043, 0.064, 0.046, 0.056, 0.062, 0.093, 0.087, 0.0062, 0.054, 0.13, 2.3},
			{0.0072, 0.024, 0.048, 0.045, 0.067, 0.051, 0.061, 0.073, 0.1, 0.092, 0.0072, 0.057, 0.13, 2.3},
			{0.012, 0.038, 0.071, 0.068, 0.1, 0.08, 0.095, 0.12, 0.18, 0.14, 0.012, 0.086, 0.2, 3.3},
		},
	},
	7: {
		0: {
			{0.004, 0.014, 0.027, 0.027, 0.04, 0.029, 0.035, 0.04, 0.059, 0.055, 0.004, 0.034, 0.08, 1.4},
			{0.0055, 0.019, 0.039, 0.034, 0.051, 0.039, 0.047, 0.056, 0.079, 0.07, 0.0055, 0.043, 0.1, 1.7},
			{0.0074, 0.023, 0.043, 0.04, 0.06, 0.049, 0.058, 0.076, 0.1, 0.084, 0.0074, 0.051, 0.12, 1.9},
			{0.011, 0.032, 0.057, 0.053, 0.077, 0.07, 0.08, 0.12, 0.15, 0.11, 0.011, 0.067, 0.15, 2.3},
		},
	},
	8: {
		1: {
			{0.0075, 0.023, 0.043, 0.041, 0.06, 0.05, 0.058, 0.077, 0.1, 0.084, 0.0075, 0.052, 0.12, 1.9},
			{0.012, 0.033, 0.058, 0.054, 0.079, 0.072, 0.083, 0.12, 0.15, 0.11, 0.012, 0.069, 0.15, 2.3},
			{0.018, 0.045, 0.074, 0.065, 0.095, 0.1, 0.11, 0.19, 0.22, 0.14, 0.018, 0.084, 0.18, 2.3},
			{0.033, 0.079, 0.13, 0.11, 0.16, 0.18, 0.2, 0.35, 0.39, 0.24, 0.033, 0.14, 0.3, 3.4},
		},
		2: {
			{0.0079, 0.022, 0.038, 0.034, 0.05, 0.048, 0.054, 0.083, 0.1, 0.073, 0.0079, 0.044, 0.098, 1.4},
			{0.014, 0.034, 0.057, 0.05, 0.073, 0.077, 0.085, 0.14, 0.17, 0.11, 0.014, 0.065, 0.14, 1.8},
			{0.023, 0.053, 0.084, 0.071, 0.1, 0.12, 0.13, 0.25, 0.27, 0.16, 0.023, 0.092, 0.19, 1.9},
			{0.043, 0.092, 0.14, 0.11, 0.16, 0.22, 0.23, 0.46, 0.49, 0.26, 0.043, 0.15, 0.3, 2.3},
		},
	},
	9: {
		1: {
			{0.019, 0.034, 0.046, 0.039, 0.052, 0.065, 0.068, 0.11, 0.12, 0.076, 0.019, 0.049, 0.086, 0.61},
			{0.025, 0.047, 0.067, 0.058, 0.079, 0.091, 0.097, 0.15, 0.17, 0.11, 0.025, 0.073, 0.14, 1.3},
		},
		2: {
			{0.0085, 0.03, 0.057, 0.057, 0.084, 0.06, 0.073, 0.08, 0.12, 0.11, 0.0085, 0.071, 0.17, 3.0},
			{0.014, 0.053, 0.1, 0.1, 0.15, 0.11, 0.13, 0.14, 0.22, 0.21, 0.014, 0.13, 0.31, 5.5},
		},
	},
}

// icComplexityBreaks bound each complexity band: gates, transistors, bits
// or data-path width depending on the subcategory.
var icComplexityBreaks = map[int]map[int][]float64{
	1: {0: {100.0, 300.0, 1000.0, 10000.0}},
	2: {0: {100.0, 1000.0, 3000.0, 10000.0, 30000.0, 60000.0}},
	3: {1: {200.0, 1000.0, 5000.0}, 2: {16000.0, 64000.0, 256000.0, 1000000.0}},
	4: {0: {8.0, 16.0, 32.0, 64.0}},
	5: {0: {16000.0, 64000.0, 256000.0, 1000000.0}},
	6: {0: {16000.0, 64000.0, 256000.0, 1000000.0}},
	7: {0: {16000.0, 64000.0, 256000.0, 1000000.0}},
	8: {0: {16000.0, 64000.0, 256000.0, 1000000.0}},
	9: {1: {10.0, 1000.0}, 2: {1000.0, 10000.0}},
}

// icDieComplexity is C1, keyed by subcategory and technology and indexed
// by complexity band.
var icDieComplexity = map[int]map[int][]float64{
	1: {0: {0.01, 0.02, 0.04, 0.06}},
	2: {1: {0.0025, 0.005, 0.01, 0.02, 0.04, 0.08}, 2: {0.01, 0.02, 0.04, 0.08, 0.16, 0.29}},
	3: {1: {0.01, 0.021, 0.042}, 2: {0.00085, 0.0017, 0.0034, 0.0068}},
	4: {1: {0.06, 0.12, 0.24, 0.48}, 2: {0.14, 0.28, 0.56, 1.12}},
	5: {1: {0.00065, 0.0013, 0.0026, 0.0052}, 2: {0.0094, 0.019, 0.038, 0.075}},
	6: {0: {0.00085, 0.0017, 0.0034, 0.0068}},
	7: {0: {0.0013, 0.0025, 0.005, 0.01}},
	8: {1: {0.0078, 0.016, 0.031, 0.062}, 2: {0.0052, 0.011, 0.021, 0.042}},
	9: {1: {4.5, 7.2}, 2: {25.0, 51.0}},
}

// icPackageFactors holds the C2 coefficient and exponent by package group.
var icPackageFactors = map[int][2]float64{
	1: {2.8e-4, 1.08},
	2: {9.0e-5, 1.51},
	3: {3.0e-5, 1.82},
	4: {3.0e-5, 2.01},
	5: {3.6e-4, 1.08},
}

// Activation energies in eV.
var (
	icActivationEnergy = map[int]float64{1: 0.65, 3: 0.65, 4: 0.65, 5: 0.6, 6: 0.6, 7: 0.6, 8: 0.6, 10: 0.35}
	icLogicEa          = []float64{0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.4, 0.45, 0.45, 0.5, 0.5, 0.6, 0.6, 0.6}
	icGaAsEa           = []float64{1.5, 1.4}
)

var (
	icPartCountPiQ = []float64{0.25, 1.0, 2.0}
	icPiQ          = []float64{0.25, 1.0, 2.0}
	icPiE          = []float64{0.5, 2.0, 4.0, 4.0, 6.0, 4.0, 5.0, 5.0, 8.0, 8.0, 0.5, 5.0, 12.0, 220.0}
	icGaAsPiA      = map[int][]float64{1: {1.0, 3.0, 3.0}, 2: {1.0}}
	icEEPROMPiECC  = map[int]float64{1: 1.0, 2: 0.72, 3: 0.68}
	icVHSICPiPT    = map[int]float64{1: 1.0, 7: 1.3, 2: 2.2, 8: 2.9, 3: 4.7, 9: 6.1}
)
