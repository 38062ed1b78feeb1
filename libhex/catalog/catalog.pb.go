package catalog

import (
	proto "github.com/gogo/protobuf/proto"
)

// Messages below follow catalog.proto; the gogo runtime marshals them from their struct tags.

// CatalogState is stored under gCatalogStateKey and describes the catalog as a whole.
type CatalogState struct {
	MajorVers int32 `protobuf:"varint,1,opt,name=major_vers,json=majorVers,proto3" json:"major_vers,omitempty"`
	MinorVers int32 `protobuf:"varint,2,opt,name=minor_vers,json=minorVers,proto3" json:"minor_vers,omitempty"`
	NumLogos  int64 `protobuf:"varint,3,opt,name=num_logos,json=numLogos,proto3" json:"num_logos,omitempty"`
}

func (m *CatalogState) Reset()         { *m = CatalogState{} }
func (m *CatalogState) String() string { return proto.CompactTextString(m) }
func (*CatalogState) ProtoMessage()    {}

// LogoRecord is one rendered logo, keyed by the hash of its style and sites.
type LogoRecord struct {
	Key         uint64   `protobuf:"varint,1,opt,name=key,proto3" json:"key,omitempty"`
	Preset      string   `protobuf:"bytes,2,opt,name=preset,proto3" json:"preset,omitempty"`
	Sites       string   `protobuf:"bytes,3,opt,name=sites,proto3" json:"sites,omitempty"`
	Lines       []string `protobuf:"bytes,4,rep,name=lines,proto3" json:"lines,omitempty"`
	NumBonds    int32    `protobuf:"varint,5,opt,name=num_bonds,json=numBonds,proto3" json:"num_bonds,omitempty"`
	NumVertices int32    `protobuf:"varint,6,opt,name=num_vertices,json=numVertices,proto3" json:"num_vertices,omitempty"`
	CreatedAt   int64    `protobuf:"varint,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *LogoRecord) Reset()         { *m = LogoRecord{} }
func (m *LogoRecord) String() string { return proto.CompactTextString(m) }
func (*LogoRecord) ProtoMessage()    {}
