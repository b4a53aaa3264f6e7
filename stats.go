package linearmap

type Stats struct {
	Size            int
	Capacity        int
	Tombstones      int
	GrowthThreshold int
	LoadFactor      float64
}
