package milhdbk217f

// Hazard rate methods.
const (
	MethodPartsCount = 1
	MethodPartStress = 2
)

// Attributes is the flat record a calculator reads inputs from and writes
// computed factors into. It is passed by value; calculators return a new copy.
type Attributes struct {
	HardwareID int `yaml:"hardware_id" json:"hardware_id"`
	RevisionID int `yaml:"revision_id" json:"revision_id"`

	CategoryID           int `yaml:"category_id" json:"category_id"`
	SubcategoryID        int `yaml:"subcategory_id" json:"subcategory_id"`
	HazardRateMethodID   int `yaml:"hazard_rate_method_id" json:"hazard_rate_method_id"`
	EnvironmentActiveID  int `yaml:"environment_active_id" json:"environment_active_id"`
	EnvironmentDormantID int `yaml:"environment_dormant_id" json:"environment_dormant_id"`
	QualityID            int `yaml:"quality_id" json:"quality_id"`
	SpecificationID      int `yaml:"specification_id" json:"specification_id"`
	TypeID               int `yaml:"type_id" json:"type_id"`
	FamilyID             int `yaml:"family_id" json:"family_id"`
	ConstructionID       int `yaml:"construction_id" json:"construction_id"`
	ConfigurationID      int `yaml:"configuration_id" json:"configuration_id"`
	ApplicationID        int `yaml:"application_id" json:"application_id"`
	InsulationID         int `yaml:"insulation_id" json:"insulation_id"`
	InsertID             int `yaml:"insert_id" json:"insert_id"`
	PackageID            int `yaml:"package_id" json:"package_id"`
	TechnologyID         int `yaml:"technology_id" json:"technology_id"`
	ContactFormID        int `yaml:"contact_form_id" json:"contact_form_id"`
	ContactRatingID      int `yaml:"contact_rating_id" json:"contact_rating_id"`
	ContactGauge         int `yaml:"contact_gauge" json:"contact_gauge"`
	MatchingID           int `yaml:"matching_id" json:"matching_id"`
	ManufacturingID      int `yaml:"manufacturing_id" json:"manufacturing_id"`
	LoadTypeID           int `yaml:"load_type_id" json:"load_type_id"`

	Quantity      int     `yaml:"quantity" json:"quantity"`
	DutyCycle     float64 `yaml:"duty_cycle" json:"duty_cycle"`
	MultAdjFactor float64 `yaml:"mult_adj_factor" json:"mult_adj_factor"`
	AddAdjFactor  float64 `yaml:"add_adj_factor" json:"add_adj_factor"`

	CurrentOperating   float64 `yaml:"current_operating" json:"current_operating"`
	CurrentRated       float64 `yaml:"current_rated" json:"current_rated"`
	PowerOperating     float64 `yaml:"power_operating" json:"power_operating"`
	PowerRated         float64 `yaml:"power_rated" json:"power_rated"`
	VoltageACOperating float64 `yaml:"voltage_ac_operating" json:"voltage_ac_operating"`
	VoltageDCOperating float64 `yaml:"voltage_dc_operating" json:"voltage_dc_operating"`
	VoltageRated       float64 `yaml:"voltage_rated" json:"voltage_rated"`
	VoltageESD         float64 `yaml:"voltage_esd" json:"voltage_esd"`
	Resistance         float64 `yaml:"resistance" json:"resistance"`
	Capacitance        float64 `yaml:"capacitance" json:"capacitance"`
	FrequencyOperating float64 `yaml:"frequency_operating" json:"frequency_operating"`

	TemperatureActive   float64 `yaml:"temperature_active" json:"temperature_active"`
	TemperatureCase     float64 `yaml:"temperature_case" json:"temperature_case"`
	TemperatureJunction float64 `yaml:"temperature_junction" json:"temperature_junction"`
	TemperatureHotSpot  float64 `yaml:"temperature_hot_spot" json:"temperature_hot_spot"`
	TemperatureRise     float64 `yaml:"temperature_rise" json:"temperature_rise"`
	TemperatureRatedMax float64 `yaml:"temperature_rated_max" json:"temperature_rated_max"`
	TemperatureRatedMin float64 `yaml:"temperature_rated_min" json:"temperature_rated_min"`
	ThetaJC             float64 `yaml:"theta_jc" json:"theta_jc"`

	Area              float64 `yaml:"area" json:"area"`
	Weight            float64 `yaml:"weight" json:"weight"`
	NCycles           float64 `yaml:"n_cycles" json:"n_cycles"`
	NElements         int     `yaml:"n_elements" json:"n_elements"`
	NActivePins       int     `yaml:"n_active_pins" json:"n_active_pins"`
	NWaveSoldered     int     `yaml:"n_wave_soldered" json:"n_wave_soldered"`
	NHandSoldered     int     `yaml:"n_hand_soldered" json:"n_hand_soldered"`
	NCircuitPlanes    int     `yaml:"n_circuit_planes" json:"n_circuit_planes"`
	YearsInProduction float64 `yaml:"years_in_production" json:"years_in_production"`
	Utilization       float64 `yaml:"utilization" json:"utilization"`
	FeatureSize       float64 `yaml:"feature_size" json:"feature_size"`

	// Computed by the dispatcher and the category calculators.
	CurrentRatio      float64 `yaml:"current_ratio" json:"current_ratio"`
	PowerRatio        float64 `yaml:"power_ratio" json:"power_ratio"`
	VoltageRatio      float64 `yaml:"voltage_ratio" json:"voltage_ratio"`
	LambdaB           float64 `yaml:"lambda_b" json:"lambda_b"`
	LambdaCyc         float64 `yaml:"lambda_cyc" json:"lambda_cyc"`
	LambdaBD          float64 `yaml:"lambda_bd" json:"lambda_bd"`
	LambdaBP          float64 `yaml:"lambda_bp" json:"lambda_bp"`
	LambdaEOS         float64 `yaml:"lambda_eos" json:"lambda_eos"`
	C1                float64 `yaml:"c1" json:"c1"`
	C2                float64 `yaml:"c2" json:"c2"`
	PiA               float64 `yaml:"pi_a" json:"pi_a"`
	PiC               float64 `yaml:"pi_c" json:"pi_c"`
	PiCD              float64 `yaml:"pi_cd" json:"pi_cd"`
	PiCF              float64 `yaml:"pi_cf" json:"pi_cf"`
	PiCV              float64 `yaml:"pi_cv" json:"pi_cv"`
	PiCYC             float64 `yaml:"pi_cyc" json:"pi_cyc"`
	PiE               float64 `yaml:"pi_e" json:"pi_e"`
	PiECC             float64 `yaml:"pi_ecc" json:"pi_ecc"`
	PiF               float64 `yaml:"pi_f" json:"pi_f"`
	PiI               float64 `yaml:"pi_i" json:"pi_i"`
	PiK               float64 `yaml:"pi_k" json:"pi_k"`
	PiL               float64 `yaml:"pi_l" json:"pi_l"`
	PiM               float64 `yaml:"pi_m" json:"pi_m"`
	PiMFG             float64 `yaml:"pi_mfg" json:"pi_mfg"`
	PiP               float64 `yaml:"pi_p" json:"pi_p"`
	PiPT              float64 `yaml:"pi_pt" json:"pi_pt"`
	PiQ               float64 `yaml:"pi_q" json:"pi_q"`
	PiR               float64 `yaml:"pi_r" json:"pi_r"`
	PiS               float64 `yaml:"pi_s" json:"pi_s"`
	PiSR              float64 `yaml:"pi_sr" json:"pi_sr"`
	PiT               float64 `yaml:"pi_t" json:"pi_t"`
	PiTAPS            float64 `yaml:"pi_taps" json:"pi_taps"`
	PiU               float64 `yaml:"pi_u" json:"pi_u"`
	PiV               float64 `yaml:"pi_v" json:"pi_v"`
	HazardRateActive  float64 `yaml:"hazard_rate_active" json:"hazard_rate_active"`
	HazardRateDormant float64 `yaml:"hazard_rate_dormant" json:"hazard_rate_dormant"`
	Overstress        bool    `yaml:"overstress" json:"overstress"`
	Reason            string  `yaml:"reason" json:"reason"`
}
