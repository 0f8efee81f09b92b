// Package render translates a positioned tree into draw output.
//
// Three consumers are served:
//
//   - BuildScene produces the per-frame draw pass for the interactive
//     viewer: edges and labels projected through the camera into screen
//     space. Labels come out at constant pixel size (the world-space
//     equivalent of scaling glyphs by 1/zoom).
//   - PNG renders the whole tree offscreen to a raster image.
//   - ToDOT / RenderSVG export the hierarchy as a Graphviz node-link
//     diagram for use outside the viewer.
package render
