package milhdbk217f

// Capacitor part count base hazard rates by subcategory and environment.
// Subcategory 1 is further keyed by specification.
var capacitorPartCountLambdaB = map[int]map[int][]float64{
	1: {
		1: {0.0036, 0.0072, 0.330, 0.016, 0.055, 0.023, 0.030, 0.07, 0.13, 0.083, 0.0018, 0.044, 0.12, 2.1},
		2: {0.0039, 0.0087, 0.042, 0.022, 0.070, 0.035, 0.047, 0.19, 0.35, 0.130, 0.0020, 0.056, 0.19, 2.5},
	},
	2:  {0: {0.0047, 0.0096, 0.044, 0.034, 0.073, 0.030, 0.040, 0.094, 0.15, 0.11, 0.0024, 0.058, 0.18, 2.7}},
	3:  {0: {0.0021, 0.0042, 0.017, 0.010, 0.030, 0.0068, 0.013, 0.026, 0.048, 0.044, 0.0010, 0.023, 0.063, 1.1}},
	4:  {0: {0.0029, 0.0058, 0.023, 0.014, 0.041, 0.012, 0.018, 0.037, 0.066, 0.060, 0.0014, 0.032, 0.088, 1.5}},
	5:  {0: {0.0041, 0.0083, 0.042, 0.021, 0.067, 0.026, 0.048, 0.086, 0.14, 0.10, 0.0020, 0.054, 0.15, 2.5}},
	6:  {0: {0.0023, 0.0092, 0.019, 0.012, 0.033, 0.0096, 0.014, 0.034, 0.053, 0.048, 0.0011, 0.026, 0.07, 1.2}},
	7:  {0: {0.0005, 0.0015, 0.0091, 0.0044, 0.014, 0.0068, 0.0095, 0.054, 0.069, 0.031, 0.00025, 0.012, 0.046, 0.45}},
	8:  {0: {0.018, 0.037, 0.19, 0.094, 0.31, 0.10, 0.14, 0.47, 0.60, 0.48, 0.0091, 0.25, 0.68, 11.0}},
	9:  {0: {0.00032, 0.00096, 0.0059, 0.0029, 0.0094, 0.0044, 0.0062, 0.035, 0.045, 0.020, 0.00016, 0.0076, 0.030, 0.29}},
	10: {0: {0.0036, 0.0074, 0.034, 0.019, 0.056, 0.015, 0.015, 0.032, 0.048, 0.077, 0.0014, 0.049, 0.13, 2.3}},
	11: {0: {0.00078, 0.0022, 0.013, 0.0056, 0.023, 0.0077, 0.015, 0.053, 0.12, 0.048, 0.00039, 0.017, 0.065, 0.68}},
	12: {0: {0.0018, 0.0039, 0.016, 0.0097, 0.028, 0.0091, 0.011, 0.034, 0.057, 0.055, 0.00072, 0.022, 0.066, 1.0}},
	13: {0: {0.0061, 0.013, 0.069, 0.039, 0.11, 0.031, 0.061, 0.13, 0.29, 0.18, 0.0030, 0.069, 0.26, 4.0}},
	14: {0: {0.024, 0.061, 0.42, 0.18, 0.59, 0.46, 0.55, 2.1, 2.6, 1.2, 0.012, 0.49, 1.7, 21.0}},
	15: {0: {0.029, 0.081, 0.58, 0.24, 0.83, 0.73, 0.88, 4.3, 5.4, 2.0, 0.015, 0.68, 2.8, 28.0}},
	16: {0: {0.08, 0.27, 1.2, 0.71, 2.3, 0.69, 1.1, 6.2, 12.0, 4.1, 0.032, 1.9, 5.9, 85.0}},
	17: {0: {0.033, 0.13, 0.62, 0.31, 0.93, 0.21, 0.28, 2.2, 3.3, 2.2, 0.16, 0.93, 3.2, 37.0}},
	18: {0: {0.80, 0.33, 1.6, 0.87, 3.0, 1.0, 1.7, 9.9, 19.0, 8.1, 0.032, 2.5, 8.9, 100.0}},
	19: {0: {0.4, 1.3, 6.8, 3.6, 13.0, 5.7, 10.0, 58.0, 90.0, 23.0, 20.0, 0.0, 0.0, 0.0}},
}

var capacitorPartCountPiQ = []float64{0.03, 0.1, 0.3, 1.0, 3.0, 3.0, 10.0}

// capacitorRefTemps maps a rated maximum temperature in C to the reference
// temperature in K used by the base hazard rate model.
var capacitorRefTemps = map[float64]float64{
	65.0: 338.0, 70.0: 343.0, 85.0: 358.0, 105.0: 378.0, 125.0: 398.0,
	150.0: 423.0, 170.0: 443.0, 175.0: 448.0, 200.0: 473.0,
}

// capacitorDefaultRatedMax is used when the rated maximum temperature is
// not one of the standard ratings.
var capacitorDefaultRatedMax = map[int]float64{
	1: 85.0, 2: 125.0, 3: 125.0, 4: 125.0, 5: 85.0, 6: 125.0, 7: 125.0,
	8: 150.0, 9: 125.0, 10: 125.0, 11: 125.0, 12: 125.0, 13: 125.0,
	14: 85.0, 15: 85.0, 16: 85.0, 17: 125.0, 18: 85.0, 19: 85.0,
}

// capacitorFactors holds f0..f4 of the base hazard rate model followed by
// g0 and g1 of the capacitance factor.
var capacitorFactors = map[int][7]float64{
	1:  {0.00086, 0.4, 5.0, 2.5, 1.8, 1.2, 0.095},
	2:  {0.00115, 0.4, 5.0, 2.5, 1.8, 1.4, 0.12},
	3:  {0.0005, 0.4, 5.0, 2.5, 1.8, 1.6, 0.13},
	4:  {0.00069, 0.4, 5.0, 2.5, 1.8, 1.2, 0.092},
	5:  {0.00099, 0.4, 5.0, 2.5, 1.8, 1.1, 0.085},
	6:  {0.00055, 0.4, 5.0, 2.5, 1.8, 1.2, 0.092},
	7:  {8.6e-10, 0.4, 3.0, 16.0, 1.0, 0.45, 0.14},
	8:  {0.0053, 0.4, 3.0, 1.2, 6.3, 0.31, 0.23},
	9:  {8.25e-10, 0.5, 4.0, 16.0, 1.0, 0.62, 0.14},
	10: {0.0003, 0.3, 3.0, 1.0, 1.0, 0.41, 0.11},
	11: {2.6e-9, 0.3, 3.0, 14.3, 1.0, 0.59, 0.12},
	12: {0.00375, 0.4, 3.0, 2.6, 9.0, 1.0, 0.12},
	13: {0.00165, 0.4, 3.0, 2.6, 9.0, 0.82, 0.066},
	14: {0.00254, 0.5, 3.0, 5.09, 5.0, 0.34, 0.18},
	15: {0.0028, 0.55, 3.0, 4.09, 5.9, 0.321, 0.19},
	16: {0.00224, 0.17, 3.0, 1.59, 10.1, 1.0, 0.0},
	17: {7.3e-7, 0.33, 3.0, 12.1, 1.0, 1.0, 0.0},
	18: {1.92e-6, 0.33, 3.0, 10.8, 1.0, 1.0, 0.0},
	19: {0.0112, 0.17, 3.0, 1.59, 10.1, 1.0, 0.0},
}

var capacitorPartStressPiQ = map[int][]float64{
	1:  {3.0, 7.0},
	2:  {1.0, 3.0, 10.0},
	3:  {0.03, 0.1, 0.3, 1.0, 3.0, 10.0, 30.0},
	4:  {0.03, 0.1, 0.3, 1.0, 3.0, 7.0, 20.0},
	5:  {0.03, 0.1, 0.3, 1.0, 10.0},
	6:  {0.02, 0.1, 0.3, 1.0, 10.0},
	7:  {0.01, 0.03, 0.1, 0.3, 1.0, 1.5, 3.0, 6.0, 15.0},
	8:  {5.0, 15.0},
	9:  {0.03, 0.1, 0.3, 1.0, 3.0, 3.0, 10.0},
	10: {0.03, 0.1, 0.3, 1.0, 3.0, 3.0, 10.0},
	11: {0.03, 0.1, 0.3, 1.0, 3.0, 10.0},
	12: {0.001, 0.01, 0.03, 0.03, 0.1, 0.3, 1.0, 1.5, 10.0},
	13: {0.03, 0.1, 0.3, 1.0, 1.5, 3.0, 10.0},
	14: {0.03, 0.1, 0.3, 1.0, 3.0, 10.0},
	15: {3.0, 10.0},
	16: {4.0, 20.0},
	17: {3.0, 10.0},
	18: {5.0, 20.0},
	19: {3.0, 20.0},
}

var capacitorPiE = map[int][]float64{
	1:  {1.0, 2.0, 9.0, 5.0, 15.0, 6.0, 8.0, 17.0, 32.0, 22.0, 0.5, 12.0, 32.0, 570.0},
	2:  {1.0, 2.0, 9.0, 7.0, 15.0, 6.0, 8.0, 17.0, 28.0, 22.0, 0.5, 12.0, 32.0, 570.0},
	3:  {1.0, 2.0, 8.0, 5.0, 14.0, 4.0, 6.0, 11.0, 20.0, 20.0, 0.5, 11.0, 29.0, 530.0},
	4:  {1.0, 2.0, 8.0, 5.0, 14.0, 4.0, 6.0, 11.0, 20.0, 20.0, 0.5, 11.0, 29.0, 530.0},
	5:  {1.0, 2.0, 10.0, 5.0, 16.0, 6.0, 11.0, 18.0, 30.0, 23.0, 0.5, 13.0, 34.0, 610.0},
	6:  {1.0, 4.0, 8.0, 5.0, 14.0, 4.0, 6.0, 13.0, 20.0, 20.0, 0.5, 11.0, 29.0, 530.0},
	7:  {1.0, 2.0, 10.0, 6.0, 16.0, 5.0, 7.0, 22.0, 28.0, 23.0, 0.5, 13.0, 34.0, 610.0},
	8:  {1.0, 2.0, 10.0, 5.0, 16.0, 5.0, 7.0, 22.0, 28.0, 23.0, 0.5, 13.0, 34.0, 610.0},
	9:  {1.0, 2.0, 10.0, 6.0, 16.0, 5.0, 7.0, 22.0, 28.0, 23.0, 0.5, 13.0, 34.0, 610.0},
	10: {1.0, 2.0, 9.0, 5.0, 15.0, 4.0, 4.0, 8.0, 12.0, 20.0, 0.4, 13.0, 34.0, 610.0},
	11: {1.0, 2.0, 10.0, 5.0, 17.0, 4.0, 8.0, 16.0, 35.0, 24.0, 0.5, 13.0, 34.0, 610.0},
	12: {1.0, 2.0, 8.0, 5.0, 14.0, 4.0, 5.0, 12.0, 20.0, 24.0, 0.4, 11.0, 29.0, 530.0},
	13: {1.0, 2.0, 10.0, 6.0, 16.0, 4.0, 8.0, 14.0, 30.0, 23.0, 0.5, 13.0, 34.0, 610.0},
	14: {1.0, 2.0, 12.0, 6.0, 17.0, 10.0, 12.0, 28.0, 35.0, 27.0, 0.5, 14.0, 38.0, 690.0},
	15: {1.0, 2.0, 12.0, 6.0, 17.0, 10.0, 12.0, 28.0, 35.0, 27.0, 0.5, 18.0, 38.0, 690.0},
	16: {1.0, 3.0, 13.0, 8.0, 24.0, 6.0, 10.0, 37.0, 70.0, 36.0, 0.4, 20.0, 52.0, 950.0},
	17: {1.0, 3.0, 12.0, 7.0, 18.0, 3.0, 4.0, 20.0, 30.0, 32.0, 0.5, 18.0, 46.0, 830.0},
	18: {1.0, 3.0, 13.0, 8.0, 24.0, 6.0, 10.0, 37.0, 70.0, 36.0, 0.5, 20.0, 52.0, 950.0},
	19: {1.0, 3.0, 14.0, 8.0, 27.0, 10.0, 18.0, 70.0, 108.0, 40.0, 0.5, 0.0, 0.0, 0.0},
}

// Tantalum construction factor and variable capacitor configuration factor.
var (
	capacitorPiC  = map[int]float64{1: 0.3, 2: 1.0, 3: 2.0, 4: 2.5, 5: 3.0}
	capacitorPiCF = map[int]float64{1: 0.1, 2: 1.0}
)
