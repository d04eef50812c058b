package yaml

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/utils"
	"gopkg.in/yaml.v3"
)

type CommentStyle int

const (
	NoComment CommentStyle = iota
	HeadComment
	LineComment
)

type Encoder struct {
	commentStyle CommentStyle
	faker        *gofakeit.Faker
}

func NewEncoder() *Encoder {
	return &Encoder{
		commentStyle: NoComment,
		faker:        gofakeit.New(0),
	}
}

// WithCommentStyle sets where the field descriptions are written
func (e *Encoder) WithCommentStyle(style CommentStyle) *Encoder {
	e.commentStyle = style
	return e
}

// WithFaker sets the faker used by Example
func (e *Encoder) WithFaker(f *gofakeit.Faker) *Encoder {
	e.faker = f
	return e
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	if e.commentStyle == NoComment {
		return yaml.Marshal(v)
	}
	node, err := e.toNode(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := utils.BytesTrimBackticks(bs)
	return yaml.Unmarshal(data, ret)
}

// Example returns YAML of an instance of the type filled with fake values
func (e *Encoder) Example(t reflect.Type) ([]byte, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	v := reflect.New(t)
	if err := e.faker.Struct(v.Interface()); err != nil {
		return nil, errors.Wrap(err, "failed to generate example")
	}
	return e.Marshal(v.Interface())
}

func (e *Encoder) toNode(v reflect.Value) (*yaml.Node, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nullNode(), nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nullNode(), nil
	}

	switch v.Kind() {
	case reflect.Struct:
		return e.structNode(v)
	case reflect.Map:
		node := &yaml.Node{Kind: yaml.MappingNode}
		iter := v.MapRange()
		for iter.Next() {
			val, err := e.toNode(iter.Value())
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalar(toString(iter.Key()), "!!str"), val)
		}
		return node, nil
	case reflect.Slice, reflect.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for i := 0; i < v.Len(); i++ {
			val, err := e.toNode(v.Index(i))
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, val)
		}
		return node, nil
	case reflect.String:
		return scalar(v.String(), "!!str"), nil
	case reflect.Bool:
		return scalar(strconv.FormatBool(v.Bool()), ""), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar(strconv.FormatInt(v.Int(), 10), ""), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return scalar(strconv.FormatUint(v.Uint(), 10), ""), nil
	case reflect.Float32, reflect.Float64:
		return scalar(strconv.FormatFloat(v.Float(), 'f', -1, 64), ""), nil
	default:
		return nil, errors.Newf("unsupported kind: %s", v.Kind())
	}
}

func (e *Encoder) structNode(v reflect.Value) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		key, opts, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if key == "-" {
			continue
		}
		if key == "" {
			key = field.Name
		}
		fv := v.Field(i)
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}

		keyNode := scalar(key, "!!str")
		if comment := Description(field.Tag.Get("jsonschema")); comment != "" {
			switch e.commentStyle {
			case HeadComment:
				keyNode.HeadComment = comment
			case LineComment:
				keyNode.LineComment = comment
			}
		}

		val, err := e.toNode(fv)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", field.Name)
		}
		node.Content = append(node.Content, keyNode, val)
	}
	return node, nil
}

// Description returns the description from the jsonschema tag
func Description(tag string) string {
	for _, part := range strings.Split(tag, ",") {
		if d, ok := strings.CutPrefix(part, "description="); ok {
			return strings.TrimSpace(d)
		}
	}
	return ""
}

func scalar(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: tag}
}

func nullNode() *yaml.Node {
	return scalar("null", "!!null")
}

func toString(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return strings.TrimSpace(utils.ToYAML(v.Interface()))
}

// FromJSON converts the JSON document to block style YAML,
// keeping the order of the object keys.
func FromJSON(js []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(js, &node); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON")
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
