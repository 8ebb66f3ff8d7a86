package bokeh

// Component is one complex Gaussian term in the sum-of-Gaussians
// approximation of a disc kernel.
//
// A controls amplitude decay, B the oscillation frequency of the complex
// exponential. Real and Imag are the weights applied to the real and
// imaginary parts of the component's convolved response when the components
// are folded back into a real image.
type Component struct {
	A    float64
	B    float64
	Real float64
	Imag float64
}

// ParamTable is an immutable ordered set of kernel components defining one
// disc-approximation family, together with the support scale the components
// were fitted at. The zero value is an empty table and is rejected by Blur;
// use NewParamTable or one of the Kernel1..Kernel9 presets.
type ParamTable struct {
	scale      float64
	components []Component
}

// NewParamTable builds a table from a support scale and components. The
// scale is part of the family definition: a tap i pixels from the kernel
// center is evaluated at offset i*scale/radius, so the component curves are
// traversed over [-scale, scale] across one blur radius. The component
// slice is copied, so the table stays immutable even if the caller reuses
// the backing array.
func NewParamTable(scale float64, components ...Component) *ParamTable {
	c := make([]Component, len(components))
	copy(c, components)
	return &ParamTable{scale: scale, components: c}
}

// Scale returns the support scale the table's components were fitted at.
func (t *ParamTable) Scale() float64 {
	if t == nil {
		return 0
	}
	return t.scale
}

// Components returns the number of components in the table.
func (t *ParamTable) Components() int {
	if t == nil {
		return 0
	}
	return len(t.components)
}

// Component returns the n-th component.
func (t *ParamTable) Component(n int) Component {
	return t.components[n]
}

// Preset parameter tables for 1 through 9 components, generated by Mike
// Pound for his complex-kernel disc approximation
// (https://github.com/mikepound/convolve). Component count is the quality
// lever: Kernel1 is the fastest and ringiest, Kernel9 the slowest and
// closest to a true disc. The catalogue fits the single-component family at
// support scale 1.4 and every other family at 1.2.
var (
	Kernel1 = NewParamTable(1.4,
		Component{0.862325, 1.624835, 0.767583, 1.862321},
	)

	Kernel2 = NewParamTable(1.2,
		Component{0.886528, 5.268909, 0.411259, -0.548794},
		Component{1.960518, 1.558213, 0.513282, 4.561110},
	)

	Kernel3 = NewParamTable(1.2,
		Component{2.176490, 5.043495, 1.621035, -2.105439},
		Component{1.019306, 9.027613, -0.280860, -0.162882},
		Component{2.815110, 1.597273, -0.366471, 10.300301},
	)

	Kernel4 = NewParamTable(1.2,
		Component{4.338459, 1.553635, -5.767909, 46.164397},
		Component{3.839993, 4.693183, 9.795391, -15.227561},
		Component{2.791880, 8.178137, -3.048324, 0.302959},
		Component{1.342190, 12.328289, 0.010001, 0.244650},
	)

	Kernel5 = NewParamTable(1.2,
		Component{4.892608, 1.685979, -22.356787, 85.912460},
		Component{4.711870, 4.998496, 35.918936, -28.875618},
		Component{4.052795, 8.244168, -13.212253, -1.578428},
		Component{2.929212, 11.900859, 0.507991, 1.816328},
		Component{1.512961, 16.116382, 0.138051, -0.010000},
	)

	Kernel6 = NewParamTable(1.2,
		Component{5.143778, 2.079813, -82.326596, 111.231024},
		Component{5.612426, 6.153387, 113.878661, 58.004879},
		Component{5.982921, 9.802895, 39.479083, -162.028887},
		Component{6.505167, 11.059237, -71.286026, 95.027069},
		Component{3.869579, 14.810520, 1.405746, -3.704914},
		Component{2.201904, 19.032909, -0.152784, -0.107988},
	)

	Kernel7 = NewParamTable(1.2,
		Component{5.635755002716984, 2.0161846499938942, -127.67050821204298, 189.13366250400748},
		Component{6.2265180958586, 6.010948636588568, 255.34251414243556, 37.55094949608352},
		Component{6.189230711552051, 8.269383035533139, -132.2590521372958, -101.7059257653572},
		Component{4.972166727344845, 12.050001393751478, -0.1843113559893084, 27.06823846423038},
		Component{4.323578237784037, 16.00101043380645, 5.837168074459592, 0.3359847314948253},
		Component{3.6920668221834534, 19.726797144782385, 0.010115759114852045, -1.091291088554394},
		Component{2.2295702188720004, 23.527764286361837, -0.07655024461742256, 0.01001768577317681},
	)

	Kernel8 = NewParamTable(1.2,
		Component{6.6430131554059075, 2.33925731610851, -665.7557728544768, 445.83362839529286},
		Component{8.948432332999396, 5.775418437190626, 1130.5906034230607, 15.626805026300797},
		Component{6.513143649767612, 8.05507417830653, -419.50196449095665, -9.275778572724292},
		Component{6.245927989258722, 12.863350894308521, -100.85574814870866, 79.1599400003683},
		Component{6.713191682126933, 17.072272272191718, 36.65346659449611, 118.71908139892597},
		Component{7.071814347005397, 18.719212513078034, 21.63902100281763, -77.52385953960055},
		Component{4.932882961391405, 22.545463415981025, -1.9683109176118303, 3.0163201264848736},
		Component{3.456372395841802, 26.088356168016503, 0.19835893874241894, 0.08089803872063023},
	)

	Kernel9 = NewParamTable(1.2,
		Component{7.393797857697906, 2.4737002456790207, -1796.6881230069646, 631.9043430000561},
		Component{13.246479495224113, 6.216076882495199, 3005.0995149934884, 169.0878309991149},
		Component{7.303628653874887, 7.783952969919921, -1058.5279460078423, 459.6898389991668},
		Component{8.154742557454425, 13.430399706116823, -1720.108330007715, 810.6026949975844},
		Component{8.381657431347698, 14.90360902110027, 1568.5705749924186, 285.01830799719926},
		Component{6.866935986644192, 20.281841043506173, 90.55436499314388, -59.610040004419275},
		Component{9.585395987559902, 21.80265398520623, -93.26089100639886, -111.18596800373774},
		Component{5.4836869943565825, 25.89243600015612, 5.110650995956478, 0.009999997374460896},
		Component{5.413819000655994, 28.96548499880915, 0.2499879943861626, -0.8591239990799346},
	)
)
