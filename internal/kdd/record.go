package kdd

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// FieldCount is the number of comma-separated fields in a connection record.
	FieldCount = 42
	// FeatureDim is the number of numeric features left after dropping
	// the symbolic fields and the label.
	FeatureDim = 38
	// LabelIndex is the position of the connection-type label.
	LabelIndex = 41
)

// symbolic marks the categorical fields (protocol_type, service, flag)
// that are excluded from the numeric feature vector, together with the label.
var symbolic = map[int]struct{}{
	1:          {},
	2:          {},
	3:          {},
	LabelIndex: {},
}

// ColumnNames lists the numeric columns of a connection record in dataset order.
var ColumnNames = []string{
	"duration",
	"src_bytes",
	"dst_bytes",
	"land",
	"wrong_fragment",
	"urgent",
	"hot",
	"num_failed_logins",
	"logged_in",
	"num_compromised",
	"root_shell",
	"su_attempted",
	"num_root",
	"num_file_creations",
	"num_shells",
	"num_access_files",
	"num_outbound_cmds",
	"is_host_login",
	"is_guest_login",
	"count",
	"srv_count",
	"serror_rate",
	"srv_serror_rate",
	"rerror_rate",
	"srv_rerror_rate",
	"same_srv_rate",
	"diff_srv_rate",
	"srv_diff_host_rate",
	"dst_host_count",
	"dst_host_srv_count",
	"dst_host_same_srv_rate",
	"dst_host_diff_srv_rate",
	"dst_host_same_src_port_rate",
	"dst_host_srv_diff_host_rate",
	"dst_host_serror_rate",
	"dst_host_srv_serror_rate",
	"dst_host_rerror_rate",
	"dst_host_srv_rerror_rate",
}

// FeatureVector is the numeric projection of a connection record.
type FeatureVector []float64

// LabeledVector pairs a feature vector with its connection-type label.
type LabeledVector struct {
	Label    string
	Features FeatureVector
}

// Parse converts a raw connection record line into its feature vector,
// dropping the symbolic fields and the label.
func Parse(line string) (FeatureVector, error) {
	v, _, err := parse(line)
	return v, err
}

// ParseLabeled converts a raw connection record line into a labeled
// feature vector. The feature content is identical to Parse.
func ParseLabeled(line string) (LabeledVector, error) {
	v, label, err := parse(line)
	if err != nil {
		return LabeledVector{}, err
	}
	return LabeledVector{
		Label:    label,
		Features: v,
	}, nil
}

func parse(line string) (FeatureVector, string, error) {
	fields := strings.Split(line, ",")
	if len(fields) < FieldCount {
		return nil, "", fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields))
	}

	features := make(FeatureVector, 0, FeatureDim)
	for i := 0; i < FieldCount; i++ {
		if _, ok := symbolic[i]; ok {
			continue
		}
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, "", fmt.Errorf("could not parse field %d (%s): %w", i, fields[i], err)
		}
		features = append(features, f)
	}

	return features, fields[LabelIndex], nil
}

// ColumnIndex returns the feature index for the given column name.
func ColumnIndex(name string) (int, error) {
	for i, c := range ColumnNames {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown column '%s'", name)
}
