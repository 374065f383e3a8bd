package milhdbk217f

// resistorPartCountLambdaB is keyed by subcategory and specification;
// subcategories without specification variants use key 0.
var resistorPartCountLambdaB = map[int]map[int][]float64{
	1: {0: {0.0005, 0.0022, 0.0071, 0.0037, 0.012, 0.0052, 0.0065, 0.016, 0.025, 0.025, 0.00025, 0.0098, 0.035, 0.36}},
	2: {
		1: {0.0012, 0.0027, 0.011, 0.0054, 0.020, 0.0063, 0.013, 0.018, 0.033, 0.030, 0.00025, 0.014, 0.044, 0.69},
		2: {0.0012, 0.0027, 0.011, 0.0054, 0.020, 0.0063, 0.013, 0.018, 0.033, 0.030, 0.00025, 0.014, 0.044, 0.69},
		3: {0.0014, 0.0031, 0.013, 0.0061, 0.023, 0.0072, 0.014, 0.021, 0.038, 0.034, 0.00028, 0.016, 0.050, 0.78},
		4: {0.0014, 0.0031, 0.013, 0.0061, 0.023, 0.0072, 0.014, 0.021, 0.038, 0.034, 0.00028, 0.016, 0.050, 0.78},
	},
	3: {0: {0.012, 0.025, 0.13, 0.062, 0.21, 0.078, 0.10, 0.19, 0.24, 0.32, 0.0060, 0.18, 0.47, 8.2}},
	4: {0: {0.0023, 0.0066, 0.031, 0.013, 0.055, 0.022, 0.043, 0.077, 0.15, 0.10, 0.0011, 0.055, 0.15, 1.7}},
	5: {0: {0.0085, 0.018, 0.10, 0.045, 0.16, 0.15, 0.17, 0.30, 0.38, 0.26, 0.0068, 0.13, 0.37, 5.4}},
	6: {
		1: {0.014, 0.031, 0.16, 0.077, 0.26, 0.073, 0.15, 0.19, 0.39, 0.42, 0.0042, 0.21, 0.62, 9.4},
		2: {0.013, 0.028, 0.15, 0.070, 0.24, 0.065, 0.13, 0.18, 0.35, 0.38, 0.0038, 0.19, 0.56, 8.6},
	},
	7:  {0: {0.008, 0.18, 0.096, 0.045, 0.15, 0.044, 0.088, 0.12, 0.24, 0.25, 0.004, 0.13, 0.37, 5.5}},
	8:  {0: {0.065, 0.32, 1.4, 0.71, 1.6, 0.71, 1.9, 1.0, 2.7, 2.4, 0.032, 1.3, 3.4, 62.0}},
	9:  {0: {0.025, 0.055, 0.35, 0.15, 0.58, 0.16, 0.26, 0.35, 0.58, 1.1, 0.013, 0.52, 1.6, 24.0}},
	10: {0: {0.33, 0.73, 7.0, 2.9, 12.0, 3.5, 5.3, 7.1, 9.8, 23.0, 0.16, 11.0, 33.0, 510.0}},
	11: {0: {0.15, 0.35, 3.1, 1.2, 5.4, 1.9, 2.8, 0.0, 0.0, 9.0, 0.075, 0.0, 0.0, 0.0}},
	12: {0: {0.15, 0.34, 2.9, 1.2, 5.0, 1.6, 2.4, 0.0, 0.0, 7.6, 0.076, 0.0, 0.0, 0.0}},
	13: {0: {0.043, 0.15, 0.75, 0.35, 1.3, 0.39, 0.78, 1.8, 2.8, 2.5, 0.21, 1.2, 3.7, 49.0}},
	14: {0: {0.05, 0.11, 1.1, 0.45, 1.7, 2.8, 4.6, 4.6, 7.5, 3.3, 0.025, 1.5, 4.7, 67.0}},
	15: {0: {0.048, 0.16, 0.76, 0.36, 1.3, 0.36, 0.72, 1.4, 2.2, 2.3, 0.024, 1.2, 3.4, 52.0}},
}

var resistorPartCountPiQ = []float64{0.030, 0.10, 0.30, 1.0, 3.0, 10.0}

var resistorPartStressPiQ = map[int][]float64{
	1:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	2:  {0.03, 0.1, 0.3, 1.0, 5.0, 5.0, 15.0},
	3:  {1.0, 3.0},
	4:  {1.0, 3.0},
	5:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	6:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	7:  {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	8:  {1.0, 15.0},
	9:  {0.02, 0.06, 0.2, 0.6, 3.0, 10.0},
	10: {2.5, 5.0},
	11: {2.0, 4.0},
	12: {2.0, 4.0},
	13: {0.02, 0.06, 0.2, 0.6, 3.0, 10.0},
	14: {2.5, 5.0},
	15: {2.0, 4.0},
}

var resistorPiE = map[int][]float64{
	1:  {1.0, 3.0, 8.0, 5.0, 13.0, 4.0, 5.0, 7.0, 11.0, 19.0, 0.5, 11.0, 27.0, 490.0},
	2:  {1.0, 2.0, 8.0, 4.0, 14.0, 4.0, 8.0, 10.0, 18.0, 19.0, 0.2, 10.0, 28.0, 510.0},
	3:  {1.0, 2.0, 10.0, 5.0, 17.0, 6.0, 8.0, 14.0, 18.0, 25.0, 0.5, 14.0, 36.0, 660.0},
	4:  {1.0, 2.0, 10.0, 5.0, 17.0, 6.0, 8.0, 14.0, 18.0, 25.0, 0.5, 14.0, 36.0, 660.0},
	5:  {1.0, 2.0, 11.0, 5.0, 18.0, 15.0, 18.0, 28.0, 35.0, 27.0, 0.8, 14.0, 38.0, 610.0},
	6:  {1.0, 2.0, 10.0, 5.0, 16.0, 4.0, 8.0, 9.0, 18.0, 23.0, 0.3, 13.0, 34.0, 610.0},
	7:  {1.0, 2.0, 10.0, 5.0, 16.0, 4.0, 8.0, 9.0, 18.0, 23.0, 0.5, 13.0, 34.0, 610.0},
	8:  {1.0, 5.0, 21.0, 11.0, 24.0, 11.0, 30.0, 16.0, 42.0, 37.0, 0.5, 20.0, 53.0, 950.0},
	9:  {1.0, 2.0, 12.0, 6.0, 20.0, 5.0, 8.0, 9.0, 15.0, 33.0, 0.5, 18.0, 48.0, 870.0},
	10: {1.0, 2.0, 18.0, 8.0, 30.0, 8.0, 12.0, 13.0, 18.0, 53.0, 0.5, 29.0, 76.0, 1400.0},
	11: {1.0, 2.0, 16.0, 7.0, 28.0, 8.0, 12.0, 0.0, 0.0, 38.0, 0.5, 0.0, 0.0, 0.0},
	12: {1.0, 3.0, 16.0, 7.0, 28.0, 8.0, 12.0, 0.0, 0.0, 38.0, 0.5, 0.0, 0.0, 0.0},
	13: {1.0, 3.0, 14.0, 6.0, 24.0, 5.0, 7.0, 12.0, 18.0, 39.0, 0.5, 22.0, 57.0, 1000.0},
	14: {1.0, 2.0, 19.0, 8.0, 29.0, 40.0, 65.0, 48.0, 78.0, 46.0, 0.5, 25.0, 66.0, 1200.0},
	15: {1.0, 3.0, 14.0, 7.0, 24.0, 6.0, 12.0, 20.0, 30.0, 39.0, 0.5, 22.0, 57.0, 1000.0},
}

// resistorFactors holds f0..f5 of the base hazard rate model, keyed by
// subcategory and specification.
var resistorFactors = map[int]map[int][6]float64{
	1: {0: {4.5e-9, 12.0, 1.0, 0.6, 1.0, 1.0}},
	2: {
		1: {3.25e-4, 1.0, 3.0, 1.0, 1.0, 1.0},
		2: {3.25e-4, 1.0, 3.0, 1.0, 1.0, 1.0},
		3: {5.0e-5, 3.5, 1.0, 1.0, 1.0, 1.0},
		4: {5.0e-5, 3.5, 1.0, 1.0, 1.0, 1.0},
	},
	3:  {0: {7.33e-3, 0.202, 2.6, 1.45, 0.89, 1.3}},
	5:  {0: {0.0031, 1.0, 10.0, 1.0, 1.0, 1.5}},
	6:  {0: {0.00148, 1.0, 2.0, 0.5, 1.0, 1.0}},
	7:  {0: {0.00015, 2.64, 1.0, 0.466, 1.0, 1.0}},
	9:  {0: {0.0062, 1.0, 5.0, 1.0, 1.0, 1.0}},
	10: {0: {0.0735, 1.03, 4.45, 2.74, 3.51, 1.0}},
	11: {0: {0.0398, 0.514, 5.28, 1.44, 4.46, 1.0}},
	12: {0: {0.0481, 0.334, 4.66, 1.47, 2.83, 1.0}},
	13: {0: {0.019, 0.445, 7.3, 2.69, 2.46, 1.0}},
	14: {0: {0.0246, 0.459, 9.3, 2.32, 5.3, 1.0}},
	15: {0: {0.018, 1.0, 7.4, 2.55, 3.6, 1.0}},
}

// resistorRefTemps is keyed by subcategory and specification.
var resistorRefTemps = map[int]map[int]float64{
	1:  {0: 343.0},
	2:  {1: 343.0, 2: 343.0, 3: 398.0, 4: 398.0},
	3:  {0: 298.0},
	5:  {0: 398.0},
	6:  {0: 298.0},
	7:  {0: 298.0},
	9:  {0: 358.0},
	10: {0: 358.0},
	11: {0: 313.0},
	12: {0: 298.0},
	13: {0: 358.0},
	14: {0: 343.0},
	15: {0: 343.0},
}

var (
	resistorFilmNetworkLambdaB = 0.00006
	resistorThermistorLambdaB  = []float64{0.021, 0.065, 0.105}
)

// resistorResistanceBreaks and resistorPiR share keys. Subcategories 6 and
// 7 are further keyed by specification and family.
var resistorResistanceBreaks = map[int]map[int][]float64{
	1:  {0: {1.0e5, 1.0e6, 1.0e7}},
	2:  {0: {1.0e5, 1.0e6, 1.0e7}},
	3:  {0: {100.0, 1.0e5, 1.0e6}},
	5:  {0: {1.0e4, 1.0e5, 1.0e6}},
	6:  {1: {500.0, 1.0e3, 5.0e3, 7.5e3, 1.0e4, 1.5e4, 2.0e4}, 2: {100.0, 1.0e3, 1.0e4, 1.0e5, 1.5e5, 2.0e5}},
	7:  {0: {500.0, 1.0e3, 5.0e3, 1.0e4, 2.0e4}},
	9:  {0: {2.0e3, 5.0e3}},
	10: {0: {1.0e4, 2.0e4, 5.0e4, 1.0e5, 2.0e5}},
	11: {0: {2.0e3, 5.0e3}},
	12: {0: {2.0e3, 5.0e3}},
	13: {0: {5.0e4, 1.0e5, 2.0e5, 5.0e5}},
	14: {0: {5.0e4, 1.0e5, 2.0e5, 5.0e5}},
	15: {0: {1.0e4, 5.0e4, 2.0e5, 1.0e6}},
}

var resistorPiR = map[int][]float64{
	1:  {1.0, 1.1, 1.6, 2.5},
	2:  {1.0, 1.1, 1.6, 2.5},
	3:  {1.0, 1.2, 1.3, 3.5},
	5:  {1.0, 1.7, 3.0, 5.0},
	9:  {1.0, 1.4, 2.0},
	10: {1.0, 1.1, 1.4, 2.0, 2.5, 3.5},
	11: {1.0, 1.4, 2.0},
	12: {1.0, 1.4, 2.0},
	13: {1.0, 1.1, 1.2, 1.4, 1.8},
	14: {1.0, 1.1, 1.2, 1.4, 1.8},
	15: {1.0, 1.1, 1.2, 1.4, 1.8},
}

// resistorFamilyPiR covers wirewound resistors, keyed by subcategory,
// specification and family.
var resistorFamilyPiR = map[int]map[int][][]float64{
	6: {
		1: {
			{1.0, 1.0, 1.2, 1.2, 1.6, 1.6, 1.6, 0.0},
			{1.0, 1.0, 1.0, 1.2, 1.6, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.0, 1.2, 1.2, 1.2, 1.6},
			{1.0, 1.2, 1.6, 1.6, 0.0, 0.0, 0.0, 0.0},
			{1.0, 1.6, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
			{1.0, 1.6, 1.6, 0.0, 0.0, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.1, 1.2, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.4, 0.0, 0.0, 0.0, 0.0, 0.0},
		},
		2: {
			{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
			{1.0, 1.0, 1.0, 1.2, 1.6, 0.0},
			{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.0, 2.0, 0.0, 0.0},
			{1.0, 1.0, 1.0, 2.0, 0.0, 0.0},
			{1.0, 1.0, 1.2, 2.0, 0.0, 0.0},
			{1.0, 1.2, 1.4, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.6, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.2, 2.0, 0.0, 0.0},
			{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.2, 0.0, 0.0},
			{1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
			{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.2, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
			{1.0, 1.0, 1.2, 1.5, 0.0, 0.0},
			{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.4, 1.6, 0.0},
			{1.0, 1.0, 1.0, 1.4, 1.6, 2.0},
			{1.0, 1.0, 1.0, 1.4, 1.6, 2.0},
			{1.0, 1.0, 1.4, 2.4, 0.0, 0.0},
			{1.0, 1.0, 1.2, 2.6, 0.0, 0.0},
			{1.0, 1.0, 1.0, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.0, 0.0, 0.0, 0.0},
			{1.0, 1.0, 0.0, 0.0, 0.0, 0.0},
			{1.0, 1.2, 1.4, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.0, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
			{1.0, 1.2, 1.5, 0.0, 0.0, 0.0},
			{1.0, 1.2, 0.0, 0.0, 0.0, 0.0},
		},
	},
	7: {
		1: {
			{1.0, 1.2, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.2, 1.2, 1.6, 0.0},
			{1.0, 1.0, 1.0, 1.1, 1.2, 1.6},
			{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
			{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
		},
		2: {
			{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
			{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
			{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
			{1.0, 1.0, 1.1, 1.2, 1.4, 0.0},
			{1.0, 1.0, 1.0, 1.2, 1.6, 0.0},
			{1.0, 1.0, 1.0, 1.1, 1.4, 0.0},
		},
	},
}

// Voltage factor breakpoints and values for variable resistors.
var (
	resistorPiVBreaksLow  = []float64{0.1, 0.2, 0.6, 0.7, 0.8, 0.9}
	resistorPiVLow        = []float64{1.1, 1.05, 1.0, 1.1, 1.22, 1.4, 2.0}
	resistorPiVBreaksHigh = []float64{0.8, 0.9}
	resistorPiVHigh       = []float64{1.0, 1.05, 1.2}
)

// resistorPiC is the construction factor of variable resistors.
var resistorPiC = map[int][]float64{
	10: {2.0, 1.0, 3.0, 1.5},
	12: {2.0, 1.0},
}
