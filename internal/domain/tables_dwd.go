package domain

/*
 * Deutscher Wetterdienst - Offenbach
 * Center: 78
 * Subcenter: 0
 * Parameter table version: 201
 * COSMO local parameters (radiation, precipitation rates, snow).
 */
var dwdTable201 = TableSource{
	Key:  TableKey{Center: 78, Subcenter: 0, Version: 201},
	Name: "Deutscher Wetterdienst - Offenbach",
	Note: "COSMO local parameters",
	Entries: []ParameterEntry{
		{5, "downward direct short wave radiation at surface (mean)", "W/(m**2)", "ASWDIR_S"},
		{22, "direct short wave radiation at surface", "W/(m**2)", "SWDIR_S"},
		{23, "diffuse downward short wave radiation at surface", "W/(m**2)", "SWDIFD_S"},
		{24, "diffuse upward short wave radiation at surface", "W/(m**2)", "SWDIFU_S"},
		{25, "long wave downward radiation at surface", "W/(m**2)", "LWD_S"},
		{26, "long wave upward radiation at surface", "W/(m**2)", "LWU_S"},
		{68, "height of snow-fall limit", "m", "SNOWLMT"},
		{84, "aerosol optical depth", "1", "AOD"},
		{100, "Large scale rain rate", "kg/(s*m**2)", "PRR_GSP"},
		{101, "Large scale snowfall rate water equivalent", "kg/(s*m**2)", "PRS_GSP"},
		{102, "Large scale rain amount", "kg/m**2", "RAIN_GSP"},
		{111, "convective rain rate", "kg/(s*m**2)", "PRR_CON"},
		{112, "convective snowfall rate water equivalent", "kg/(s*m**2)", "PRS_CON"},
		{113, "convective rain amount", "kg/m**2", "RAIN_CON"},
		{129, "Freshsnow factor  (weighting function for albedo indicating freshness of snow)", "", "FRESHSNW"},
		{133, "snow density", "kg/m**3", "RHO_SNOW"},
		{187, "maximum wind velocity", "m/s", "VMAX_10M"},
		{203, "temperature of the snow-surface", "K", "T_SNOW"},
		{215, "temperature of ice upper surface", "K", ""},
	},
}

/*
 * Deutscher Wetterdienst - Offenbach
 * Center: 78
 * Subcenter: 0
 * Parameter table version: 205
 * Synthetic satellite imagery from the COSMO forward operator.
 */
var dwdTable205 = TableSource{
	Key:  TableKey{Center: 78, Subcenter: 0, Version: 205},
	Name: "Deutscher Wetterdienst - Offenbach",
	Note: "Synthetic satellite imagery",
	Entries: []ParameterEntry{
		{1, "synthetic satellite images Meteosat5", "non-dim", "SYNME5"},
		{2, "synthetic satellite images Meteosat6", "non-dim", "SYNME6"},
		{3, "synthetic satellite images Meteosat7", "non-dim", "SYNME7"},
		{4, "synthetic satellite imags MSG", "non-dim", "SYNMSG"},
	},
}
