package hcl

// settingsFile is the top-level structure of a settings file for decoding.
//
//	log_level      = "debug"
//	log_format     = "json"
//	preview_rows   = 20
//	precision      = 3
//	missing_values = ["-", "?"]
//
//	seq {
//	  url            = env("SEQ_URL", "http://localhost:5341")
//	  batch_size     = 10
//	  flush_interval = "2s"
//	}
type settingsFile struct {
	LogLevel      *string   `hcl:"log_level,optional"`
	LogFormat     *string   `hcl:"log_format,optional"`
	PreviewRows   *int      `hcl:"preview_rows,optional"`
	Precision     *int      `hcl:"precision,optional"`
	MissingValues []string  `hcl:"missing_values,optional"`
	Seq           *seqBlock `hcl:"seq,block"`
}

type seqBlock struct {
	URL           string  `hcl:"url"`
	BatchSize     *int    `hcl:"batch_size,optional"`
	FlushInterval *string `hcl:"flush_interval,optional"`
}
