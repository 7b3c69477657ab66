package geometry

import (
	"github.com/wavefront-rt/tracer/pkg/core"
	"github.com/wavefront-rt/tracer/pkg/material"
)

// treeNode is a node in the triangle tree: either an internal split with two
// children, or a leaf holding its shapes directly.
type treeNode struct {
	boundingBox AABB
	left        *treeNode
	right       *treeNode
	shapes      []Shape
}

// TriangleTree is the acceleration structure a scene queries for the
// nearest ray-triangle intersection. It never rebalances after
// construction: scenes are static for the duration of a render.
type TriangleTree struct {
	root   *treeNode
	Center core.Vec3
	Radius float64
}

// leafThreshold is the shape count at which a node stops splitting and
// falls back to linear search.
const leafThreshold = 8

// NewTriangleTree builds a tree over shapes (triangles, or meshes exposing
// their own bounding box) using midpoint splits along each node's longest axis.
func NewTriangleTree(shapes []Shape) *TriangleTree {
	if len(shapes) == 0 {
		return &TriangleTree{root: nil, Center: core.Vec3{}, Radius: 0}
	}

	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	root := buildTree(shapesCopy)

	var worldCenter core.Vec3
	var worldRadius float64
	if root != nil {
		worldCenter = root.boundingBox.Center()
		worldRadius = root.boundingBox.Max.Subtract(worldCenter).Length()
	} else {
		worldCenter = core.Vec3{}
		worldRadius = 100.0
	}

	return &TriangleTree{root: root, Center: worldCenter, Radius: worldRadius}
}

// buildTree recursively partitions shapes at the spatial midpoint of the
// longest axis of their combined bounding box. This avoids the O(n^2 log n)
// cost of a full SAH build; the split is by position, not by count, so the
// two halves are not guaranteed to hold equal numbers of shapes.
func buildTree(shapes []Shape) *treeNode {
	boundingBox := unionBoxes(shapes)

	if len(shapes) <= leafThreshold {
		return &treeNode{boundingBox: boundingBox, shapes: shapes}
	}

	axis, splitPos, ok := findSplit(boundingBox)
	if !ok {
		return &treeNode{boundingBox: boundingBox, shapes: shapes}
	}

	left, right := partition(shapes, axis, splitPos)
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{boundingBox: boundingBox, shapes: shapes}
	}

	return &treeNode{
		boundingBox: boundingBox,
		left:        buildTree(left),
		right:       buildTree(right),
	}
}

func unionBoxes(shapes []Shape) AABB {
	var box AABB
	if len(shapes) > 0 {
		box = shapes[0].BoundingBox()
		for _, s := range shapes[1:] {
			box = box.Union(s.BoundingBox())
		}
	}
	return box
}

// findSplit picks the longest axis of box and the midpoint split along it.
func findSplit(box AABB) (axis int, pos float64, ok bool) {
	axis = box.LongestAxis()

	var minVal, maxVal float64
	switch axis {
	case 0:
		minVal, maxVal = box.Min.X, box.Max.X
	case 1:
		minVal, maxVal = box.Min.Y, box.Max.Y
	case 2:
		minVal, maxVal = box.Min.Z, box.Max.Z
	}

	if maxVal <= minVal {
		return -1, 0, false
	}
	return axis, (minVal + maxVal) * 0.5, true
}

func partition(shapes []Shape, axis int, splitPos float64) ([]Shape, []Shape) {
	var left, right []Shape

	for _, shape := range shapes {
		center := shape.BoundingBox().Center()
		var centerVal float64
		switch axis {
		case 0:
			centerVal = center.X
		case 1:
			centerVal = center.Y
		case 2:
			centerVal = center.Z
		}

		if centerVal < splitPos {
			left = append(left, shape)
		} else {
			right = append(right, shape)
		}
	}

	return left, right
}

// Hit returns the nearest intersection along the ray within [tMin, tMax], or
// false if nothing in the tree is hit.
func (tt *TriangleTree) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if tt.root == nil {
		return nil, false
	}
	return hitNode(tt.root, ray, tMin, tMax)
}

func hitNode(node *treeNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.boundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.shapes != nil {
		var closest *material.HitRecord
		closestSoFar := tMax
		for _, shape := range node.shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	if node.left != nil {
		if hit, ok := hitNode(node.left, ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}
	if node.right != nil {
		if hit, ok := hitNode(node.right, ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the tree's overall bounding box, so a TriangleTree can
// itself be nested as a Shape inside a larger tree.
func (tt *TriangleTree) BoundingBox() AABB {
	if tt.root == nil {
		return AABB{}
	}
	return tt.root.boundingBox
}
