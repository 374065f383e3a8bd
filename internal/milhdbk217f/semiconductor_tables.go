package milhdbk217f

// semiconductorPartCountLambdaB is keyed by subcategory then type;
// subcategories without types use key 0.
var semiconductorPartCountLambdaB = map[int]map[int][]float64{
	1: {
		1: {0.0036, 0.028, 0.049, 0.043, 0.1, 0.092, 0.21, 0.2, 0.44, 0.17, 0.0018, 0.076, 0.23, 1.5},
		2: {0.00094, 0.0075, 0.013, 0.011, 0.027, 0.024, 0.054, 0.054, 0.12, 0.045, 0.00047, 0.02, 0.06, 0.4},
		3: {0.065, 0.52, 0.89, 0.78, 1.9, 1.7, 3.7, 3.7, 8.0, 3.1, 0.032, 1.4, 4.1, 28.0},
		4: {0.0028, 0.022, 0.039, 0.034, 0.062, 0.073, 0.16, 0.16, 0.35, 0.13, 0.0014, 0.06, 0.18, 1.2},
		5: {0.0029, 0.023, 0.04, 0.035, 0.084, 0.075, 0.17, 0.17, 0.36, 0.14, 0.0015, 0.062, 0.18, 1.2},
		6: {0.0033, 0.024, 0.039, 0.035, 0.082, 0.066, 0.15, 0.13, 0.27, 0.12, 0.0016, 0.06, 0.16, 1.3},
		7: {0.0058, 0.04, 0.066, 0.06, 0.14, 0.11, 0.25, 0.22, 0.46, 0.21, 0.0028, 0.1, 0.28, 2.1},
	},
	2: {
		1: {0.86, 2.8, 8.9, 5.6, 20.0, 11.0, 14.0, 36.0, 62.0, 44.0, 0.43, 16.0, 67.0, 350.0},
		2: {0.31, 0.76, 2.1, 1.5, 4.6, 2.0, 2.5, 4.5, 7.6, 7.9, 0.16, 3.7, 12.0, 94.0},
		3: {0.004, 0.0096, 0.0026, 0.0019, 0.058, 0.025, 0.032, 0.057, 0.097, 0.1, 0.002, 0.048, 0.15, 1.2},
		4: {0.028, 0.068, 0.19, 0.14, 0.41, 0.18, 0.22, 0.4, 0.69, 0.71, 0.014, 0.34, 1.1, 8.5},
		5: {0.047, 0.11, 0.31, 0.23, 0.68, 0.3, 0.37, 0.67, 1.1, 1.2, 0.023, 0.56, 1.8, 14.0},
		6: {0.0043, 0.01, 0.029, 0.021, 0.063, 0.028, 0.034, 0.062, 0.11, 0.11, 0.0022, 0.052, 0.17, 1.3},
	},
	3: {
		1: {0.00015, 0.0011, 0.0017, 0.0017, 0.0037, 0.003, 0.0067, 0.006, 0.013, 0.0056, 0.000073, 0.0027, 0.0074, 0.056},
		2: {0.0057, 0.042, 0.069, 0.063, 0.15, 0.12, 0.26, 0.23, 0.5, 0.22, 0.0029, 0.11, 0.29, 1.1},
	},
	4: {0: {0.014, 0.099, 0.16, 0.15, 0.34, 0.28, 0.62, 0.53, 1.1, 0.51, 0.0069, 0.25, 0.68, 5.3}},
	5: {0: {0.016, 0.12, 0.2, 0.18, 0.42, 0.35, 0.8, 0.74, 1.6, 0.66, 0.0079, 0.31, 0.88, 6.4}},
	6: {0: {0.094, 0.23, 0.63, 0.46, 1.4, 0.6, 0.75, 1.3, 2.3, 2.4, 0.047, 1.1, 3.6, 28.0}},
	7: {0: {0.074, 0.15, 0.37, 0.29, 0.81, 0.29, 0.37, 0.52, 0.88, 0.037, 0.33, 0.66, 1.8, 18.0}},
	8: {
		1: {0.17, 0.51, 1.5, 1.0, 3.4, 1.8, 2.3, 5.4, 9.2, 7.2, 0.083, 2.8, 11.0, 63.0},
		2: {0.42, 1.3, 3.8, 2.5, 8.5, 4.5, 5.6, 13.0, 23.0, 18.0, 0.21, 6.9, 27.0, 160.0},
	},
	9:  {0: {0.014, 0.099, 0.16, 0.15, 0.34, 0.28, 0.62, 0.53, 1.1, 0.51, 0.0069, 0.25, 0.68, 5.3}},
	10: {0: {0.0025, 0.02, 0.034, 0.03, 0.072, 0.064, 0.14, 0.14, 0.31, 0.12, 0.0012, 0.053, 0.16, 1.1}},
	11: {
		1: {0.011, 0.029, 0.083, 0.059, 0.18, 0.084, 0.11, 0.21, 0.35, 0.34, 0.0057, 0.15, 0.51, 3.7},
		2: {0.027, 0.07, 0.2, 0.14, 0.43, 0.2, 0.25, 0.49, 0.83, 0.8, 0.013, 0.35, 1.2, 8.7},
		3: {0.00047, 0.0012, 0.0035, 0.0025, 0.0077, 0.0035, 0.0044, 0.0086, 0.015, 0.014, 0.00024, 0.0053, 0.021, 0.15},
	},
	12: {0: {0.0062, 0.016, 0.045, 0.032, 0.1, 0.046, 0.058, 0.11, 0.19, 0.18, 0.0031, 0.082, 0.28, 2.0}},
	13: {
		1: {5.1, 16.0, 49.0, 32.0, 110.0, 58.0, 72.0, 100.0, 170.0, 230.0, 2.6, 87.0, 350.0, 2000.0},
		2: {8.9, 28.0, 85.0, 55.0, 190.0, 100.0, 130.0, 180.0, 300.0, 400.0, 4.5, 150.0, 600.0, 3500.0},
	},
}

var (
	semiconductorQualityGeneral = []float64{0.7, 1.0, 2.4, 5.5, 8.0}
	semiconductorQualityLaser   = []float64{1.0, 1.0, 3.3}
	semiconductorQualityRF      = []float64{0.5, 1.0, 2.0, 5.0}
	semiconductorQualityHF      = []float64{0.5, 1.0, 5.0, 25.0, 50.0}
	semiconductorQualityHFGaAs  = []float64{0.5, 1.0, 1.8, 2.5}
)

// Scalar stress base rates.
var semiconductorLambdaB = map[int]float64{3: 0.00074, 5: 0.0083, 6: 0.18, 10: 0.0022}

// Stress base rates keyed by type.
var semiconductorTypeLambdaB = map[int][]float64{
	1:  {0.0038, 0.0010, 0.069, 0.003, 0.005, 0.0013, 0.0034, 0.002},
	2:  {0.22, 0.18, 0.0023, 0.0081, 0.027, 0.0025, 0.0025},
	4:  {0.012, 0.0045},
	9:  {0.06, 0.023},
	11: {0.0055, 0.004, 0.0025, 0.013, 0.013, 0.0064, 0.0033, 0.017, 0.017, 0.0086, 0.0013, 0.00023},
	13: {3.23, 5.65},
}

// Activation temperatures in K.
var (
	semiconductorTempFactorByType = map[int][]float64{
		1: {3091.0, 3091.0, 3091.0, 3091.0, 3091.0, 3091.0, 1925.0, 1925.0},
		2: {5260.0, 2100.0, 2100.0, 2100.0, 2100.0, 2100.0},
	}
	semiconductorTempFactor = map[int]float64{
		3: 2114.0, 4: 1925.0, 5: 2483.0, 6: 2114.0, 8: 4485.0, 9: 1925.0,
		10: 3082.0, 11: 2790.0, 12: 2790.0, 13: 4635.0,
	}
	// semiconductorRFTempFactor holds the activation temperature and the
	// low and high voltage multipliers of RF bipolar transistors by type.
	semiconductorRFTempFactor = map[int][3]float64{
		1: {2903.0, 0.1, 2.0},
		2: {5794.0, 0.38, 7.55},
	}
)

// semiconductorCaseTemperature is the default case temperature by active
// environment.
var semiconductorCaseTemperature = []float64{35.0, 45.0, 50.0, 45.0, 50.0, 60.0, 60.0, 75.0, 75.0, 60.0, 35.0, 50.0, 60.0, 45.0}

// semiconductorThetaJC is the default junction-to-case thermal resistance
// by package.
var semiconductorThetaJC = []float64{
	70.0, 10.0, 70.0, 70.0, 70.0, 70.0, 70.0, 5.0, 70.0, 70.0,
	10.0, 70.0, 70.0, 70.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0,
	10.0, 70.0, 70.0, 5.0, 22.0, 70.0, 5.0, 70.0, 5.0, 5.0,
	1.0, 10.0, 70.0, 70.0, 5.0, 5.0, 5.0, 10.0, 5.0, 5.0,
	10.0, 5.0, 10.0, 10.0, 10.0, 5.0, 70.0, 70.0, 70.0, 70.0,
	70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0,
	70.0, 70.0, 70.0, 70.0, 70.0,
}

var (
	semiconductorPiA = map[int][]float64{
		2: {0.5, 2.5, 1.0},
		3: {1.5, 0.7},
		4: {1.5, 0.7, 2.0, 4.0, 8.0, 10.0},
		8: {1.0, 4.0},
	}
	semiconductorPiC = []float64{1.0, 2.0}
	semiconductorPiM = []float64{1.0, 2.0, 4.0}
)

var (
	semiconductorPiEGeneral = []float64{1.0, 6.0, 9.0, 9.0, 19.0, 13.0, 29.0, 20.0, 43.0, 24.0, 0.5, 14.0, 32.0, 320.0}
	semiconductorPiEHF      = []float64{1.0, 2.0, 5.0, 4.0, 11.0, 4.0, 5.0, 7.0, 12.0, 16.0, 0.5, 9.0, 24.0, 250.0}
	semiconductorPiERF      = []float64{1.0, 2.0, 5.0, 4.0, 11.0, 4.0, 5.0, 7.0, 12.0, 16.0, 0.5, 7.5, 24.0, 250.0}
	semiconductorPiEOpto    = []float64{1.0, 2.0, 8.0, 5.0, 12.0, 4.0, 6.0, 6.0, 8.0, 17.0, 0.5, 9.0, 24.0, 450.0}
)
