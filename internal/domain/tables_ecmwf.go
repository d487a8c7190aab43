package domain

/*
 * European Centre for Medium-Range Weather Forecasts - Reading
 * Center: 98
 * Subcenter: 0
 * Parameter table version: 128
 * Operational archive; only the commonly distributed surface and
 * pressure-level parameters are carried.
 */
var ecmwfTable128 = TableSource{
	Key:  TableKey{Center: 98, Subcenter: 0, Version: 128},
	Name: "European Centre for Medium-Range Weather Forecasts - Reading",
	Note: "Operational archive, common surface and pressure-level parameters",
	Entries: []ParameterEntry{
		{1, "Stream function", "m**2 s**-1", "STRF"},
		{2, "Velocity potential", "m**2 s**-1", "VPOT"},
		{3, "Potential temperature", "K", "PT"},
		{26, "Lake cover", "(0 - 1)", "CL"},
		{27, "Low vegetation cover", "(0 - 1)", "CVL"},
		{28, "High vegetation cover", "(0 - 1)", "CVH"},
		{29, "Type of low vegetation", "~", "TVL"},
		{30, "Type of high vegetation", "~", "TVH"},
		{31, "Sea-ice cover", "(0 - 1)", "CI"},
		{32, "Snow albedo", "(0 - 1)", "ASN"},
		{33, "Snow density", "kg m**-3", "RSN"},
		{34, "Sea surface temperature", "K", "SSTK"},
		{39, "Volumetric soil water layer 1", "m**3 m**-3", "SWVL1"},
		{40, "Volumetric soil water layer 2", "m**3 m**-3", "SWVL2"},
		{41, "Volumetric soil water layer 3", "m**3 m**-3", "SWVL3"},
		{42, "Volumetric soil water layer 4", "m**3 m**-3", "SWVL4"},
		{43, "Soil type", "~", "SLT"},
		{44, "Snow evaporation", "m of water equivalent", "ES"},
		{45, "Snowmelt", "m of water equivalent", "SMLT"},
		{50, "Large-scale precipitation fraction", "s", "LSPF"},
		{59, "Convective available potential energy", "J kg**-1", "CAPE"},
		{60, "Potential vorticity", "K m**2 kg**-1 s**-1", "PV"},
		{129, "Geopotential", "m**2 s**-2", "Z"},
		{130, "Temperature", "K", "T"},
		{131, "U component of wind", "m s**-1", "U"},
		{132, "V component of wind", "m s**-1", "V"},
		{133, "Specific humidity", "kg kg**-1", "Q"},
		{134, "Surface pressure", "Pa", "SP"},
		{135, "Vertical velocity", "Pa s**-1", "W"},
		{136, "Total column water", "kg m**-2", "TCW"},
		{137, "Total column water vapour", "kg m**-2", "TCWV"},
		{138, "Vorticity (relative)", "s**-1", "VO"},
		{139, "Soil temperature level 1", "K", "STL1"},
		{141, "Snow depth", "m of water equivalent", "SD"},
		{142, "Large-scale precipitation", "m", "LSP"},
		{143, "Convective precipitation", "m", "CP"},
		{144, "Snowfall", "m of water equivalent", "SF"},
		{146, "Surface sensible heat flux", "J m**-2", "SSHF"},
		{147, "Surface latent heat flux", "J m**-2", "SLHF"},
		{151, "Mean sea level pressure", "Pa", "MSL"},
		{152, "Logarithm of surface pressure", "~", "LNSP"},
		{155, "Divergence", "s**-1", "D"},
		{156, "Geopotential Height", "gpm", "GH"},
		{157, "Relative humidity", "%", "R"},
		{164, "Total cloud cover", "(0 - 1)", "TCC"},
		{165, "10 metre U wind component", "m s**-1", "10U"},
		{166, "10 metre V wind component", "m s**-1", "10V"},
		{167, "2 metre temperature", "K", "2T"},
		{168, "2 metre dewpoint temperature", "K", "2D"},
		{169, "Surface solar radiation downwards", "J m**-2", "SSRD"},
		{170, "Soil temperature level 2", "K", "STL2"},
		{172, "Land-sea mask", "(0 - 1)", "LSM"},
		{175, "Surface thermal radiation downwards", "J m**-2", "STRD"},
		{176, "Surface net solar radiation", "J m**-2", "SSR"},
		{177, "Surface net thermal radiation", "J m**-2", "STR"},
		{178, "Top net solar radiation", "J m**-2", "TSR"},
		{179, "Top net thermal radiation", "J m**-2", "TTR"},
		{180, "Eastward turbulent surface stress", "N m**-2 s", "EWSS"},
		{181, "Northward turbulent surface stress", "N m**-2 s", "NSSS"},
		{182, "Evaporation", "m of water equivalent", "E"},
		{183, "Soil temperature level 3", "K", "STL3"},
		{186, "Low cloud cover", "(0 - 1)", "LCC"},
		{187, "Medium cloud cover", "(0 - 1)", "MCC"},
		{188, "High cloud cover", "(0 - 1)", "HCC"},
		{189, "Sunshine duration", "s", "SUND"},
		{201, "Maximum temperature at 2 metres since previous post-processing", "K", "MX2T"},
		{202, "Minimum temperature at 2 metres since previous post-processing", "K", "MN2T"},
		{205, "Runoff", "m", "RO"},
		{228, "Total precipitation", "m", "TP"},
		{235, "Skin temperature", "K", "SKT"},
		{236, "Soil temperature level 4", "K", "STL4"},
		{246, "Specific cloud liquid water content", "kg kg**-1", "CLWC"},
		{247, "Specific cloud ice water content", "kg kg**-1", "CIWC"},
		{248, "Fraction of cloud cover", "(0 - 1)", "CC"},
	},
}

/*
 * European Centre for Medium-Range Weather Forecasts - Reading
 * Center: 98
 * Subcenter: 0
 * Parameter table version: 170
 * Seasonal forecasting system.
 */
var ecmwfTable170 = TableSource{
	Key:  TableKey{Center: 98, Subcenter: 0, Version: 170},
	Name: "European Centre for Medium-Range Weather Forecasts - Reading",
	Note: "Seasonal forecasting system",
	Entries: []ParameterEntry{
		{129, "Geopotential", "m**2 s**-2", "Z"},
		{130, "Temperature", "K", "T"},
		{131, "U-velocity", "m s**-1", "U"},
		{132, "V-velocity", "m s**-1", "V"},
		{133, "Specific humidity", "kg kg**-1", "Q"},
		{138, "Vorticity", "s**-1", "VO"},
		{139, "Soil temperature level 1", "K", "STL1"},
		{140, "Soil wetness level 1", "m", "SWL1"},
		{141, "Snow depth", "m of water equivalent", "SD"},
		{149, "Total soil moisture", "m", "TSW"},
		{151, "Mean sea level pressure", "Pa", "MSL"},
		{155, "Divergence", "s**-1", "D"},
		{157, "Relative humidity", "%", "R"},
		{164, "Total cloud cover", "(0 - 1)", "TCC"},
		{171, "Soil wetness level 2", "m", "SWL2"},
		{179, "Top net thermal radiation", "J m**-2 s", "TTR"},
		{184, "Soil wetness level 3", "m", "SWL3"},
		{201, "Maximum temperature at 2 metres", "K", "MX2T"},
		{202, "Minimum temperature at 2 metres", "K", "MN2T"},
		{228, "Total precipitation", "m", "TP"},
	},
}

/*
 * European Centre for Medium-Range Weather Forecasts - Reading
 * Center: 98
 * Subcenter: 0
 * Parameter table version: 172
 * Mean rates and fluxes; several rows carry no mnemonic.
 */
var ecmwfTable172 = TableSource{
	Key:  TableKey{Center: 98, Subcenter: 0, Version: 172},
	Name: "European Centre for Medium-Range Weather Forecasts - Reading",
	Note: "Mean rates and fluxes",
	Entries: []ParameterEntry{
		{44, "Snow evaporation", "m of water s**-1", "ES"},
		{45, "Snowmelt", "m of water s**-1", "SMLT"},
		{48, "Magnitude of turbulent surface stress", "N m**-2", ""},
		{50, "Large-scale precipitation fraction", "-", ""},
		{142, "Large-scale precipitation", "m s**-1", "LSP"},
		{143, "Convective precipitation", "m s**-1", "CP"},
		{144, "Snowfall (convective + stratiform)", "m of water equivalent s**-1", "SF"},
		{146, "Surface sensible heat flux", "W m**-2", "SSHF"},
		{147, "Surface latent heat flux", "W m**-2", "SLHF"},
		{169, "Surface solar radiation downwards", "W m**-2", "SSRD"},
		{175, "Surface thermal radiation downwards", "W m**-2", "STRD"},
		{176, "Surface solar radiation", "W m**-2", "SSR"},
		{177, "Surface thermal radiation", "W m**-2", "STR"},
		{178, "Top solar radiation", "W m**-2", "TSR"},
		{179, "Top thermal radiation", "W m**-2", "TTR"},
		{180, "East-West surface stress", "N m**-2", "EWSS"},
		{181, "North-South surface stress", "N m**-2", "NSSS"},
		{182, "Evaporation", "m of water s**-1", "E"},
		{189, "Sunshine duration", "-", "SUND"},
		{195, "Longitudinal component of gravity wave stress", "N m**-2", "LGWS"},
		{196, "Meridional component of gravity wave stress", "N m**-2", "MGWS"},
		{197, "Gravity wave dissipation", "W m**-2", "GWD"},
		{205, "Runoff", "m s**-1", "RO"},
		{208, "Top net solar radiation, clear sky", "W m**-2", ""},
		{209, "Top net thermal radiation, clear sky", "W m**-2", ""},
		{210, "Surface net solar radiation, clear sky", "W m**-2", ""},
		{211, "Surface net thermal radiation, clear sky", "W m**-2", ""},
		{212, "Solar insolation", "W m**-2", ""},
		{228, "Total precipitation", "m s**-1", "TP"},
		{239, "Convective snowfall", "m of water equivalent s**-1", "CSF"},
		{240, "Large scale snowfall", "m of water equivalent s**-1", "LSF"},
	},
}
