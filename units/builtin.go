package units

import "dimensional/si"

type quantity interface {
	Quantity() si.Quantity
}

func unit(name, symbol string, q quantity, aliases ...string) Unit {
	return Unit{Name: name, Symbol: symbol, Aliases: aliases, Quantity: q.Quantity()}
}

func builtins() []Unit {
	return []Unit{
		unit("kilogram", "kg", Kilogram, "kilograms"),
		unit("gram", "g", Gram, "grams"),
		unit("milligram", "mg", Milligram, "milligrams"),
		unit("tonne", "t", Tonne, "tonnes"),
		unit("ounce", "oz", Ounce, "ounces"),
		unit("pound", "lb", Pound, "lbs", "pounds"),

		unit("meter", "m", Meter, "meters", "metre", "metres"),
		unit("centimeter", "cm", Centimeter, "centimeters"),
		unit("millimeter", "mm", Millimeter, "millimeters"),
		unit("micrometer", "µm", Micrometer, "um", "micron"),
		unit("kilometer", "km", Kilometer, "kilometers"),
		unit("inch", "in", Inch, "inches"),
		unit("foot", "ft", Foot, "feet"),
		unit("yard", "yd", Yard, "yards"),
		unit("mile", "mi", Mile, "miles"),
		unit("nautical_mile", "nmi", NauticalMile, "NM"),

		unit("second", "s", Second, "sec", "seconds"),
		unit("minute", "min", Minute, "minutes"),
		unit("hour", "h", Hour, "hr", "hours"),
		unit("day", "d", Day, "days"),

		unit("radian", "rad", Radian, "radians"),
		unit("degree", "deg", Degree, "°", "degrees"),

		unit("square_meter", "m²", SquareMeter),
		unit("hectare", "ha", Hectare),
		unit("cubic_meter", "m³", CubicMeter),
		unit("liter", "L", Liter, "l", "litre"),
		unit("cubic_foot", "ft³", CubicFoot),
		unit("meter_per_second", "m/s", MeterPerSecond),
		unit("kilometer_per_hour", "km/h", KilometerPerHour, "kph"),
		unit("knot", "kn", Knot, "kt", "knots"),
		unit("standard_gravity", "gn", StandardGravity),
		unit("hertz", "Hz", Hertz),
		unit("newton", "N", Newton, "newtons"),
		unit("pascal", "Pa", Pascal),
		unit("joule", "J", Joule, "joules"),
		unit("watt", "W", Watt, "watts"),
		unit("kilowatt_hour", "kWh", KilowattHour),
	}
}
