package milhdbk217f

// Connection subcategories.
const (
	connectionCircular = 1
	connectionPCBEdge  = 2
	connectionICSocket = 3
	connectionPTH      = 4
	connectionNonPTH   = 5
)

// connectionPartCountLambdaB is keyed by subcategory then type; subcategories
// without types use key 0.
var connectionPartCountLambdaB = map[int]map[int][]float64{
	connectionCircular: {
		1: {0.011, 0.14, 0.11, 0.069, 0.20, 0.058, 0.098, 0.23, 0.34, 0.37, 0.0054, 0.16, 0.42, 6.8},
		2: {0.012, 0.015, 0.13, 0.075, 0.21, 0.06, 0.1, 0.22, 0.32, 0.38, 0.0061, 0.18, 0.54, 7.3},
	},
	connectionPCBEdge:  {0: {0.0054, 0.021, 0.055, 0.035, 0.10, 0.059, 0.11, 0.085, 0.16, 0.19, 0.0027, 0.078, 0.21, 3.4}},
	connectionICSocket: {0: {0.0019, 0.0058, 0.027, 0.012, 0.035, 0.015, 0.023, 0.021, 0.025, 0.048, 0.00097, 0.027, 0.070, 1.3}},
	connectionPTH:      {0: {0.053, 0.11, 0.37, 0.69, 0.27, 0.27, 0.43, 0.85, 1.5, 1.0, 0.027, 0.53, 1.4, 27.0}},
	connectionNonPTH: {
		1: {0.0026, 0.0052, 0.018, 0.010, 0.029, 0.010, 0.016, 0.016, 0.021, 0.042, 0.0013, 0.023, 0.062, 1.1},
		2: {0.00014, 0.00028, 0.00096, 0.00056, 0.0015, 0.00056, 0.00084, 0.00084, 0.0011, 0.0022, 0.00007, 0.0013, 0.0034, 0.059},
		3: {0.00026, 0.00052, 0.0018, 0.0010, 0.0029, 0.0010, 0.0016, 0.0016, 0.0021, 0.0042, 0.00013, 0.0023, 0.0062, 0.11},
		4: {0.00005, 0.0001, 0.00035, 0.0002, 0.00055, 0.0002, 0.0003, 0.0003, 0.0004, 0.0008, 0.000025, 0.00045, 0.0012, 0.021},
		5: {0.0000035, 0.000007, 0.000025, 0.000014, 0.000039, 0.000014, 0.000021, 0.000021, 0.000028, 0.000056, 0.0000018, 0.000031, 0.000084, 0.0015},
		6: {0.00012, 0.00024, 0.00084, 0.00048, 0.0013, 0.00048, 0.00072, 0.00072, 0.00096, 0.0019, 0.00005, 0.0011, 0.0029, 0.050},
		7: {0.000069, 0.000138, 0.000483, 0.000276, 0.000759, 0.000276, 0.000414, 0.000414, 0.000552, 0.001104, 0.000035, 0.000621, 0.001656, 0.02898},
	},
}

var connectionPartCountPiQ = []float64{1.0, 2.0}

var connectionPartStressPiQ = map[int][]float64{
	connectionPTH:    {1.0, 2.0},
	connectionNonPTH: {1.0, 1.0, 2.0, 20.0},
}

// connectionGaugeK converts contact current to temperature rise by wire
// gauge.
var connectionGaugeK = map[int]float64{22: 0.989, 20: 0.640, 16: 0.274, 12: 0.100}

// Insert material temperature classes.
type insertClass struct {
	a, b, tref, c float64
}

var (
	insertClassA = insertClass{0.020, -1592.0, 473.0, 5.36}
	insertClassB = insertClass{0.431, -2073.6, 423.0, 4.66}
	insertClassC = insertClass{0.190, -1298.0, 373.0, 4.25}
	insertClassD = insertClass{0.770, -1528.8, 358.0, 4.72}
)

// connectionInsertClass is keyed by type, specification and insert.
var connectionInsertClass = map[int]map[int]map[int]insertClass{
	1: {
		1: {1: insertClassB, 2: insertClassB, 3: insertClassC, 4: insertClassD},
		2: {1: insertClassB, 2: insertClassD},
		3: {1: insertClassA, 2: insertClassB},
		4: {1: insertClassA, 2: insertClassB, 3: insertClassC},
	},
	2: {
		1: {1: insertClassB, 2: insertClassC},
		2: {1: insertClassA, 2: insertClassB, 3: insertClassD},
	},
}

// connectionCircularPiE is keyed by quality; the other subcategories have
// one list each.
var (
	connectionCircularPiE = map[int][]float64{
		1: {1.0, 1.0, 8.0, 5.0, 13.0, 3.0, 5.0, 8.0, 12.0, 19.0, 0.5, 10.0, 27.0, 490.0},
		2: {2.0, 5.0, 21.0, 10.0, 27.0, 12.0, 18.0, 17.0, 25.0, 37.0, 0.8, 20.0, 54.0, 970.0},
	}
	connectionPiE = map[int][]float64{
		connectionPCBEdge:  {1.0, 3.0, 8.0, 5.0, 13.0, 6.0, 11.0, 6.0, 11.0, 26.0, 0.5, 14.0, 36.0, 500.0},
		connectionICSocket: {1.0, 3.0, 14.0, 6.0, 18.0, 8.0, 12.0, 11.0, 13.0, 25.0, 0.5, 14.0, 36.0, 650.0},
		connectionPTH:      {1.0, 2.0, 7.0, 5.0, 13.0, 5.0, 8.0, 16.0, 28.0, 19.0, 0.5, 10.0, 27.0, 500.0},
		connectionNonPTH:   {1.0, 2.0, 7.0, 4.0, 11.0, 4.0, 6.0, 6.0, 8.0, 16.0, 0.5, 9.0, 24.0, 420.0},
	}
)

var (
	connectionSocketLambdaB = 0.00042
	connectionPTHLambdaB    = []float64{0.000041, 0.00026}
	connectionNonPTHLambdaB = []float64{0.0026, 0.00014, 0.00026, 0.00005, 0.0000035, 0.00012, 0.000069}
)
