// Package mocks provides test doubles for the amsterdam client.
package mocks

import (
	"context"
	"image"

	amsterdam "github.com/sells-group/amsterdam-svi/pkg/amsterdam"
	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// PanoramaIDs provides a mock function with given fields: ctx, missionYear, bbox
func (_m *MockClient) PanoramaIDs(ctx context.Context, missionYear int, bbox amsterdam.BBox) []string {
	ret := _m.Called(ctx, missionYear, bbox)

	if len(ret) == 0 {
		panic("no return value specified for PanoramaIDs")
	}

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, int, amsterdam.BBox) []string); ok {
		r0 = rf(ctx, missionYear, bbox)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	return r0
}

// FetchPanorama provides a mock function with given fields: ctx, panoID
func (_m *MockClient) FetchPanorama(ctx context.Context, panoID string) (*amsterdam.Panorama, error) {
	ret := _m.Called(ctx, panoID)

	if len(ret) == 0 {
		panic("no return value specified for FetchPanorama")
	}

	var r0 *amsterdam.Panorama
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*amsterdam.Panorama, error)); ok {
		return rf(ctx, panoID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*amsterdam.Panorama)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// SearchBuildings provides a mock function with given fields: ctx, observer, radius
func (_m *MockClient) SearchBuildings(ctx context.Context, observer amsterdam.Point, radius float64) ([]amsterdam.BuildingSummary, error) {
	ret := _m.Called(ctx, observer, radius)

	if len(ret) == 0 {
		panic("no return value specified for SearchBuildings")
	}

	var r0 []amsterdam.BuildingSummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, amsterdam.Point, float64) ([]amsterdam.BuildingSummary, error)); ok {
		return rf(ctx, observer, radius)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]amsterdam.BuildingSummary)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// BuildingPolygons provides a mock function with given fields: ctx, buildings
func (_m *MockClient) BuildingPolygons(ctx context.Context, buildings []amsterdam.BuildingSummary) amsterdam.Polygons {
	ret := _m.Called(ctx, buildings)

	if len(ret) == 0 {
		panic("no return value specified for BuildingPolygons")
	}

	var r0 amsterdam.Polygons
	if rf, ok := ret.Get(0).(func(context.Context, []amsterdam.BuildingSummary) amsterdam.Polygons); ok {
		r0 = rf(ctx, buildings)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(amsterdam.Polygons)
		}
	}

	return r0
}

// DownloadImage provides a mock function with given fields: ctx, imageURL
func (_m *MockClient) DownloadImage(ctx context.Context, imageURL string) image.Image {
	ret := _m.Called(ctx, imageURL)

	if len(ret) == 0 {
		panic("no return value specified for DownloadImage")
	}

	var r0 image.Image
	if rf, ok := ret.Get(0).(func(context.Context, string) image.Image); ok {
		r0 = rf(ctx, imageURL)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(image.Image)
		}
	}

	return r0
}

// NewMockClient creates a new instance of MockClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
